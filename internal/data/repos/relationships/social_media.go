package relationships

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type SocialMediaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.SocialMedia) ([]*types.SocialMedia, error)
	GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.SocialMedia, error)
	FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error
}

type socialMediaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSocialMediaRepo(db *gorm.DB, baseLog *logger.Logger) SocialMediaRepo {
	return &socialMediaRepo{db: db, log: baseLog.With("repo", "SocialMediaRepo")}
}

func (r *socialMediaRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SocialMedia) ([]*types.SocialMedia, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.SocialMedia{}, nil
	}
	if err := t.WithContext(ctx).Omit("Platform").Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *socialMediaRepo) GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.SocialMedia, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.SocialMedia
	if relationshipID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Platform").
		Where("relationship_id = ?", relationshipID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *socialMediaRepo) FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(relationshipIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("relationship_id IN ?", relationshipIDs).Delete(&types.SocialMedia{}).Error
}
