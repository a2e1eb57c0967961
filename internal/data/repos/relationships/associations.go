package relationships

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type ConnectionTypeAssocRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.RelationshipConnectionType) ([]*types.RelationshipConnectionType, error)
	GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.RelationshipConnectionType, error)
	FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error
}

type TagAssocRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.RelationshipTag) ([]*types.RelationshipTag, error)
	GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.RelationshipTag, error)
	FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error
}

type connectionTypeAssocRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConnectionTypeAssocRepo(db *gorm.DB, baseLog *logger.Logger) ConnectionTypeAssocRepo {
	return &connectionTypeAssocRepo{db: db, log: baseLog.With("repo", "ConnectionTypeAssocRepo")}
}

func (r *connectionTypeAssocRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.RelationshipConnectionType) ([]*types.RelationshipConnectionType, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.RelationshipConnectionType{}, nil
	}
	if err := t.WithContext(ctx).Omit("ConnectionType").Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *connectionTypeAssocRepo) GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.RelationshipConnectionType, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.RelationshipConnectionType
	if relationshipID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("ConnectionType").
		Where("relationship_id = ?", relationshipID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *connectionTypeAssocRepo) FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(relationshipIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("relationship_id IN ?", relationshipIDs).Delete(&types.RelationshipConnectionType{}).Error
}

type tagAssocRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagAssocRepo(db *gorm.DB, baseLog *logger.Logger) TagAssocRepo {
	return &tagAssocRepo{db: db, log: baseLog.With("repo", "TagAssocRepo")}
}

func (r *tagAssocRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.RelationshipTag) ([]*types.RelationshipTag, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.RelationshipTag{}, nil
	}
	if err := t.WithContext(ctx).Omit("Tag").Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tagAssocRepo) GetByRelationshipID(ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID) ([]*types.RelationshipTag, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.RelationshipTag
	if relationshipID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Tag").
		Where("relationship_id = ?", relationshipID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tagAssocRepo) FullDeleteByRelationshipIDs(ctx context.Context, tx *gorm.DB, relationshipIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(relationshipIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("relationship_id IN ?", relationshipIDs).Delete(&types.RelationshipTag{}).Error
}
