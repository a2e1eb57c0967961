package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type TagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) (*types.Tag, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Tag, error)
	TopByRating(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Tag, error)
	ZeroAllRatings(ctx context.Context, tx *gorm.DB) error
	SetRatings(ctx context.Context, tx *gorm.DB, ratings map[uint]float64) error
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: baseLog.With("repo", "TagRepo")}
}

func (r *tagRepo) Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) (*types.Tag, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *tagRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Tag, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.Tag
	err := t.WithContext(ctx).Where("name = ?", name).First(&out).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tagRepo) TopByRating(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Tag, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Tag
	if err := t.WithContext(ctx).Order("priority_rating DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tagRepo) ZeroAllRatings(ctx context.Context, tx *gorm.DB) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.Tag{}).
		Where("1 = 1").
		Update("priority_rating", 0).Error
}

func (r *tagRepo) SetRatings(ctx context.Context, tx *gorm.DB, ratings map[uint]float64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	for id, score := range ratings {
		if err := t.WithContext(ctx).
			Model(&types.Tag{}).
			Where("id = ?", id).
			Update("priority_rating", score).Error; err != nil {
			return err
		}
	}
	return nil
}
