package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type ConnectionTypeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, ctype *types.ConnectionType) (*types.ConnectionType, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.ConnectionType, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.ConnectionType, error)
	ListByName(ctx context.Context, tx *gorm.DB) ([]*types.ConnectionType, error)
	ZeroAllRatings(ctx context.Context, tx *gorm.DB) error
	SetRatings(ctx context.Context, tx *gorm.DB, ratings map[uint]float64) error
}

type connectionTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConnectionTypeRepo(db *gorm.DB, baseLog *logger.Logger) ConnectionTypeRepo {
	return &connectionTypeRepo{db: db, log: baseLog.With("repo", "ConnectionTypeRepo")}
}

func (r *connectionTypeRepo) Create(ctx context.Context, tx *gorm.DB, ctype *types.ConnectionType) (*types.ConnectionType, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Create(ctype).Error; err != nil {
		return nil, err
	}
	return ctype, nil
}

func (r *connectionTypeRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.ConnectionType, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.ConnectionType
	err := t.WithContext(ctx).Where("name = ?", name).First(&out).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *connectionTypeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.ConnectionType, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.ConnectionType
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *connectionTypeRepo) ListByName(ctx context.Context, tx *gorm.DB) ([]*types.ConnectionType, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.ConnectionType
	if err := t.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *connectionTypeRepo) ZeroAllRatings(ctx context.Context, tx *gorm.DB) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.ConnectionType{}).
		Where("1 = 1").
		Update("priority_rating", 0).Error
}

func (r *connectionTypeRepo) SetRatings(ctx context.Context, tx *gorm.DB, ratings map[uint]float64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	for id, score := range ratings {
		if err := t.WithContext(ctx).
			Model(&types.ConnectionType{}).
			Where("id = ?", id).
			Update("priority_rating", score).Error; err != nil {
			return err
		}
	}
	return nil
}
