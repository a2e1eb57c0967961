package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/errorsx"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

// followUpCadences maps a configured follow-up frequency to the interval
// before the next automated follow-up comes due. Unrecognized frequencies
// schedule nothing.
var followUpCadences = map[string]time.Duration{
	"daily":     24 * time.Hour,
	"weekly":    7 * 24 * time.Hour,
	"bi-weekly": 14 * 24 * time.Hour,
	"monthly":   30 * 24 * time.Hour,
	"quarterly": 90 * 24 * time.Hour,
}

type FollowUpService interface {
	Add(ctx context.Context, relationshipID uuid.UUID, topic, dueDate string) (*types.FollowUp, error)
	Delete(ctx context.Context, id uint) error
}

type followUpService struct {
	db               *gorm.DB
	log              *logger.Logger
	relationshipRepo repos.RelationshipRepo
	followUpRepo     repos.FollowUpRepo
}

func NewFollowUpService(db *gorm.DB, log *logger.Logger, relationshipRepo repos.RelationshipRepo, followUpRepo repos.FollowUpRepo) FollowUpService {
	return &followUpService{
		db:               db,
		log:              log.With("service", "FollowUpService"),
		relationshipRepo: relationshipRepo,
		followUpRepo:     followUpRepo,
	}
}

// Add creates a manual follow-up with an explicit topic and YYYY-MM-DD due
// date, both required.
func (s *followUpService) Add(ctx context.Context, relationshipID uuid.UUID, topic, dueDate string) (*types.FollowUp, error) {
	if topic == "" || dueDate == "" {
		return nil, errorsx.Validation("Topic and due date are required.")
	}
	due, err := time.ParseInLocation("2006-01-02", dueDate, time.UTC)
	if err != nil {
		return nil, errorsx.Validation("Due date must be a valid date (YYYY-MM-DD).")
	}

	var followUp *types.FollowUp
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rel, err := s.relationshipRepo.GetByID(ctx, tx, relationshipID)
		if err != nil {
			return fmt.Errorf("load relationship: %w", err)
		}
		if rel == nil {
			return errorsx.ErrNotFound
		}
		followUp, err = s.followUpRepo.Create(ctx, tx, &types.FollowUp{
			RelationshipID: rel.ID,
			Topic:          topic,
			DueDate:        due,
			Status:         types.FollowUpStatusPending,
		})
		return err
	}); err != nil {
		return nil, err
	}
	return followUp, nil
}

func (s *followUpService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		followUp, err := s.followUpRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load follow-up: %w", err)
		}
		if followUp == nil {
			return errorsx.ErrNotFound
		}
		return s.followUpRepo.FullDeleteByIDs(ctx, tx, []uint{id})
	})
}

// scheduleNextFollowUp creates the next pending follow-up for a relationship
// with a recognized cadence. No-op otherwise.
func scheduleNextFollowUp(ctx context.Context, tx *gorm.DB, followUpRepo repos.FollowUpRepo, rel *types.Relationship, now time.Time) error {
	if rel.FollowUpFrequency == "" {
		return nil
	}
	delta, ok := followUpCadences[rel.FollowUpFrequency]
	if !ok {
		return nil
	}
	_, err := followUpRepo.Create(ctx, tx, &types.FollowUp{
		RelationshipID: rel.ID,
		Topic:          fmt.Sprintf("Automated Follow-up (%s)", capitalize(rel.FollowUpFrequency)),
		DueDate:        now.Add(delta),
		Status:         types.FollowUpStatusPending,
	})
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
