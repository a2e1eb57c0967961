package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type EventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error)
	Save(ctx context.Context, tx *gorm.DB, event *types.Event) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error)
	GetDetailByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Event, error)
	ListPotential(ctx context.Context, tx *gorm.DB) ([]*types.Event, error)
	ListUpcoming(ctx context.Context, tx *gorm.DB, now time.Time) ([]*types.Event, error)
	ListPast(ctx context.Context, tx *gorm.DB, now time.Time) ([]*types.Event, error)
	ReplaceParticipants(ctx context.Context, tx *gorm.DB, event *types.Event, participants []*types.Relationship) error
	SetImportance(ctx context.Context, tx *gorm.DB, id uuid.UUID, score float64) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	return &eventRepo{db: db, log: baseLog.With("repo", "EventRepo")}
}

func (r *eventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit("Participants").Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepo) Save(ctx context.Context, tx *gorm.DB, event *types.Event) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Omit("Participants").Save(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Event
	err := t.WithContext(ctx).First(&out, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *eventRepo) GetDetailByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Event
	err := t.WithContext(ctx).Preload("Participants").First(&out, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *eventRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Event, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Event
	if err := t.WithContext(ctx).Preload("Participants").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) ListPotential(ctx context.Context, tx *gorm.DB) ([]*types.Event, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Event
	if err := t.WithContext(ctx).
		Where("is_potential = ?", true).
		Order("start_date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) ListUpcoming(ctx context.Context, tx *gorm.DB, now time.Time) ([]*types.Event, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Event
	if err := t.WithContext(ctx).
		Where("is_potential = ? AND start_date >= ?", false, now).
		Order("start_date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) ListPast(ctx context.Context, tx *gorm.DB, now time.Time) ([]*types.Event, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Event
	if err := t.WithContext(ctx).
		Where("is_potential = ? AND start_date < ?", false, now).
		Order("start_date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) ReplaceParticipants(ctx context.Context, tx *gorm.DB, event *types.Event, participants []*types.Relationship) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Model(event).Association("Participants").Replace(participants)
}

func (r *eventRepo) SetImportance(ctx context.Context, tx *gorm.DB, id uuid.UUID, score float64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).
		Model(&types.Event{}).
		Where("id = ?", id).
		Update("importance_score", score).Error
}

func (r *eventRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	if err := t.WithContext(ctx).Exec("DELETE FROM event_participants WHERE event_id IN ?", ids).Error; err != nil {
		return err
	}
	return t.WithContext(ctx).Where("id IN ?", ids).Delete(&types.Event{}).Error
}
