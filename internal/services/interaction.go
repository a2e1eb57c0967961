package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/errorsx"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

// LogInteractionInput is the add-interaction form. CompletedFollowUpID, when
// set, names a pending follow-up satisfied by this interaction.
type LogInteractionInput struct {
	Title               string
	Type                string
	Platform            string
	Details             string
	CompletedFollowUpID uint
}

type InteractionService interface {
	Log(ctx context.Context, relationshipID uuid.UUID, in LogInteractionInput) (*types.InteractionHistory, error)
	Get(ctx context.Context, id uint) (*types.InteractionHistory, error)
	Update(ctx context.Context, id uint, title, details, interactionType, platform string) (*types.InteractionHistory, error)
	Delete(ctx context.Context, id uint) error
}

type interactionService struct {
	db               *gorm.DB
	log              *logger.Logger
	relationshipRepo repos.RelationshipRepo
	interactionRepo  repos.InteractionRepo
	followUpRepo     repos.FollowUpRepo
}

func NewInteractionService(
	db *gorm.DB,
	log *logger.Logger,
	relationshipRepo repos.RelationshipRepo,
	interactionRepo repos.InteractionRepo,
	followUpRepo repos.FollowUpRepo,
) InteractionService {
	return &interactionService{
		db:               db,
		log:              log.With("service", "InteractionService"),
		relationshipRepo: relationshipRepo,
		interactionRepo:  interactionRepo,
		followUpRepo:     followUpRepo,
	}
}

// Log records an interaction, bumps last_contacted, and optionally completes
// a pending follow-up. Completing one schedules the next automated follow-up
// when the relationship has a recognized cadence.
func (s *interactionService) Log(ctx context.Context, relationshipID uuid.UUID, in LogInteractionInput) (*types.InteractionHistory, error) {
	if in.Title == "" {
		return nil, errorsx.Validation("Title is required for an interaction.")
	}

	var interaction *types.InteractionHistory
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rel, err := s.relationshipRepo.GetByID(ctx, tx, relationshipID)
		if err != nil {
			return fmt.Errorf("load relationship: %w", err)
		}
		if rel == nil {
			return errorsx.ErrNotFound
		}

		now := time.Now().UTC()
		interaction, err = s.interactionRepo.Create(ctx, tx, &types.InteractionHistory{
			RelationshipID: rel.ID,
			Date:           now,
			Title:          in.Title,
			Type:           in.Type,
			Platform:       in.Platform,
			Details:        in.Details,
		})
		if err != nil {
			return fmt.Errorf("create interaction: %w", err)
		}

		if err := s.relationshipRepo.UpdateFields(ctx, tx, rel.ID, map[string]interface{}{
			"last_contacted": now,
		}); err != nil {
			return fmt.Errorf("update last contacted: %w", err)
		}

		if in.CompletedFollowUpID != 0 {
			followUp, err := s.followUpRepo.GetByID(ctx, tx, in.CompletedFollowUpID)
			if err != nil {
				return fmt.Errorf("load follow-up: %w", err)
			}
			if followUp != nil && followUp.RelationshipID == rel.ID {
				if err := s.followUpRepo.UpdateFields(ctx, tx, followUp.ID, map[string]interface{}{
					"status":       types.FollowUpStatusCompleted,
					"completed_at": now,
				}); err != nil {
					return fmt.Errorf("complete follow-up: %w", err)
				}
				if err := scheduleNextFollowUp(ctx, tx, s.followUpRepo, rel, now); err != nil {
					return fmt.Errorf("schedule next follow-up: %w", err)
				}
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return interaction, nil
}

func (s *interactionService) Get(ctx context.Context, id uint) (*types.InteractionHistory, error) {
	interaction, err := s.interactionRepo.GetDetailByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load interaction: %w", err)
	}
	if interaction == nil {
		return nil, errorsx.ErrNotFound
	}
	return interaction, nil
}

func (s *interactionService) Update(ctx context.Context, id uint, title, details, interactionType, platform string) (*types.InteractionHistory, error) {
	if title == "" {
		return nil, errorsx.Validation("Title cannot be empty.")
	}

	var out *types.InteractionHistory
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		interaction, err := s.interactionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load interaction: %w", err)
		}
		if interaction == nil {
			return errorsx.ErrNotFound
		}
		if err := s.interactionRepo.UpdateFields(ctx, tx, id, map[string]interface{}{
			"title":    title,
			"details":  details,
			"type":     interactionType,
			"platform": platform,
		}); err != nil {
			return fmt.Errorf("update interaction: %w", err)
		}
		out, err = s.interactionRepo.GetByID(ctx, tx, id)
		return err
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *interactionService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		interaction, err := s.interactionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load interaction: %w", err)
		}
		if interaction == nil {
			return errorsx.ErrNotFound
		}
		return s.interactionRepo.FullDeleteByIDs(ctx, tx, []uint{id})
	})
}
