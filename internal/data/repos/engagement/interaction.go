package engagement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type InteractionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.InteractionHistory) (*types.InteractionHistory, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.InteractionHistory, error)
	GetDetailByID(ctx context.Context, tx *gorm.DB, id uint) (*types.InteractionHistory, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error
	FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error
}

type interactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionRepo(db *gorm.DB, baseLog *logger.Logger) InteractionRepo {
	return &interactionRepo{db: db, log: baseLog.With("repo", "InteractionRepo")}
}

func (r *interactionRepo) Create(ctx context.Context, tx *gorm.DB, row *types.InteractionHistory) (*types.InteractionHistory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit("Relationship").Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *interactionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.InteractionHistory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.InteractionHistory
	err := t.WithContext(ctx).First(&out, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *interactionRepo) GetDetailByID(ctx context.Context, tx *gorm.DB, id uint) (*types.InteractionHistory, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.InteractionHistory
	err := t.WithContext(ctx).Preload("Relationship").First(&out, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *interactionRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, updates map[string]interface{}) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 || len(updates) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Model(&types.InteractionHistory{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *interactionRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id IN ?", ids).Delete(&types.InteractionHistory{}).Error
}

func (r *interactionRepo) FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(relationshipIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("relationship_id IN ?", relationshipIDs).Delete(&types.InteractionHistory{}).Error
}
