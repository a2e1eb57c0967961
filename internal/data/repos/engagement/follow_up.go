package engagement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type FollowUpRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.FollowUp) (*types.FollowUp, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.FollowUp, error)
	GetPendingByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.FollowUp, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error
	FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error
}

type followUpRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFollowUpRepo(db *gorm.DB, baseLog *logger.Logger) FollowUpRepo {
	return &followUpRepo{db: db, log: baseLog.With("repo", "FollowUpRepo")}
}

func (r *followUpRepo) Create(ctx context.Context, tx *gorm.DB, row *types.FollowUp) (*types.FollowUp, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *followUpRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.FollowUp, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.FollowUp
	err := t.WithContext(ctx).First(&out, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *followUpRepo) GetPendingByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.FollowUp, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.FollowUp
	if relationshipID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("relationship_id = ? AND status = ?", relationshipID, types.FollowUpStatusPending).
		Order("due_date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *followUpRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 || len(updates) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Model(&types.FollowUp{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *followUpRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id IN ?", ids).Delete(&types.FollowUp{}).Error
}

func (r *followUpRepo) FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(relationshipIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("relationship_id IN ?", relationshipIDs).Delete(&types.FollowUp{}).Error
}
