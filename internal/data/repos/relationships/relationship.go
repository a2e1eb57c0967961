package relationships

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

// SearchFilter narrows the relationship search. Zero values mean the
// dimension is not filtered on.
type SearchFilter struct {
	NameContains     string
	Priority         string
	TagID            uint
	ConnectionTypeID uint
}

func (f SearchFilter) Empty() bool {
	return f.NameContains == "" && f.Priority == "" && f.TagID == 0 && f.ConnectionTypeID == 0
}

type RelationshipRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rel *types.Relationship) (*types.Relationship, error)
	Save(ctx context.Context, tx *gorm.DB, rel *types.Relationship) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Relationship, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Relationship, error)
	GetDetailByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Relationship, error)
	ListWithAssociations(ctx context.Context, tx *gorm.DB) ([]*types.Relationship, error)
	Search(ctx context.Context, tx *gorm.DB, filter SearchFilter, limit int) ([]*types.Relationship, error)
	TopEventAttendees(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Relationship, error)
	RemoveFromAllEvents(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type relationshipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRelationshipRepo(db *gorm.DB, baseLog *logger.Logger) RelationshipRepo {
	return &relationshipRepo{db: db, log: baseLog.With("repo", "RelationshipRepo")}
}

func (r *relationshipRepo) Create(ctx context.Context, tx *gorm.DB, rel *types.Relationship) (*types.Relationship, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit("Events").Create(rel).Error; err != nil {
		return nil, err
	}
	return rel, nil
}

func (r *relationshipRepo) Save(ctx context.Context, tx *gorm.DB, rel *types.Relationship) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Omit("ConnectionTypeAssociations", "TagAssociations", "SocialMedia", "Interactions", "FollowUps", "Events").
		Save(rel).Error
}

func (r *relationshipRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Relationship, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *relationshipRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Relationship, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Relationship
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *relationshipRepo) GetDetailByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Relationship, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Relationship
	err := t.WithContext(ctx).
		Preload("ConnectionTypeAssociations.ConnectionType").
		Preload("TagAssociations.Tag").
		Preload("SocialMedia.Platform").
		Preload("Interactions", func(q *gorm.DB) *gorm.DB { return q.Order("date DESC") }).
		Preload("FollowUps").
		First(&out, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *relationshipRepo) ListWithAssociations(ctx context.Context, tx *gorm.DB) ([]*types.Relationship, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Relationship
	if err := t.WithContext(ctx).
		Preload("ConnectionTypeAssociations.ConnectionType").
		Preload("TagAssociations.Tag").
		Preload("SocialMedia.Platform").
		Preload("FollowUps").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *relationshipRepo) Search(ctx context.Context, tx *gorm.DB, filter SearchFilter, limit int) ([]*types.Relationship, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Model(&types.Relationship{})
	if filter.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+filter.NameContains+"%")
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.TagID != 0 {
		q = q.Joins("JOIN relationship_tags ON relationship_tags.relationship_id = relationships.id").
			Where("relationship_tags.tag_id = ?", filter.TagID)
	}
	if filter.ConnectionTypeID != 0 {
		q = q.Joins("JOIN relationship_connection_types ON relationship_connection_types.relationship_id = relationships.id").
			Where("relationship_connection_types.connection_type_id = ?", filter.ConnectionTypeID)
	}
	var out []*types.Relationship
	if err := q.Order("name ASC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *relationshipRepo) TopEventAttendees(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Relationship, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Relationship
	err := t.WithContext(ctx).
		Model(&types.Relationship{}).
		Select("relationships.*, COUNT(event_participants.event_id) AS event_count").
		Joins("LEFT JOIN event_participants ON event_participants.relationship_id = relationships.id").
		Group("relationships.id").
		Order("event_count DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *relationshipRepo) RemoveFromAllEvents(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).Exec("DELETE FROM event_participants WHERE relationship_id = ?", id).Error
}

func (r *relationshipRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil || len(updates) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Model(&types.Relationship{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *relationshipRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id IN ?", ids).Delete(&types.Relationship{}).Error
}
