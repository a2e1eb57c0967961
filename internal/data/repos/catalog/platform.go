package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type PlatformRepo interface {
	Create(ctx context.Context, tx *gorm.DB, platform *types.Platform) (*types.Platform, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Platform, error)
	ListByName(ctx context.Context, tx *gorm.DB) ([]*types.Platform, error)
	ListByRating(ctx context.Context, tx *gorm.DB) ([]*types.Platform, error)
	UpdateRules(ctx context.Context, tx *gorm.DB, id uint, requiresHandle, requiresLink bool) error
	ZeroAllRatings(ctx context.Context, tx *gorm.DB) error
	SetRatings(ctx context.Context, tx *gorm.DB, ratings map[uint]float64) error
}

type platformRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlatformRepo(db *gorm.DB, baseLog *logger.Logger) PlatformRepo {
	return &platformRepo{db: db, log: baseLog.With("repo", "PlatformRepo")}
}

func (r *platformRepo) Create(ctx context.Context, tx *gorm.DB, platform *types.Platform) (*types.Platform, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit("SocialMediaAccounts").Create(platform).Error; err != nil {
		return nil, err
	}
	return platform, nil
}

func (r *platformRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Platform, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.Platform
	err := t.WithContext(ctx).Where("name = ?", name).First(&out).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *platformRepo) ListByName(ctx context.Context, tx *gorm.DB) ([]*types.Platform, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Platform
	if err := t.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *platformRepo) ListByRating(ctx context.Context, tx *gorm.DB) ([]*types.Platform, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Platform
	if err := t.WithContext(ctx).Order("priority_rating DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *platformRepo) UpdateRules(ctx context.Context, tx *gorm.DB, id uint, requiresHandle, requiresLink bool) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.Platform{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"requires_handle": requiresHandle,
			"requires_link":   requiresLink,
		}).Error
}

func (r *platformRepo) ZeroAllRatings(ctx context.Context, tx *gorm.DB) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.Platform{}).
		Where("1 = 1").
		Update("priority_rating", 0).Error
}

func (r *platformRepo) SetRatings(ctx context.Context, tx *gorm.DB, ratings map[uint]float64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	for id, score := range ratings {
		if err := t.WithContext(ctx).
			Model(&types.Platform{}).
			Where("id = ?", id).
			Update("priority_rating", score).Error; err != nil {
			return err
		}
	}
	return nil
}
