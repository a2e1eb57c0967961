package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/scoring"
)

// ScoringService owns the derived score columns: priority_rating on
// platforms, connection types and tags, and importance_score on events.
// Both recalculations are idempotent projections over the full store.
type ScoringService interface {
	RecalculateAllRatings(ctx context.Context) error
	RecalculateAllEventImportance(ctx context.Context) error
	EventImportance(participants []types.Relationship) float64
}

type scoringService struct {
	db               *gorm.DB
	log              *logger.Logger
	cfg              scoring.Config
	relationshipRepo repos.RelationshipRepo
	platformRepo     repos.PlatformRepo
	ctypeRepo        repos.ConnectionTypeRepo
	tagRepo          repos.TagRepo
	eventRepo        repos.EventRepo
}

func NewScoringService(
	db *gorm.DB,
	log *logger.Logger,
	cfg scoring.Config,
	relationshipRepo repos.RelationshipRepo,
	platformRepo repos.PlatformRepo,
	ctypeRepo repos.ConnectionTypeRepo,
	tagRepo repos.TagRepo,
	eventRepo repos.EventRepo,
) ScoringService {
	return &scoringService{
		db:               db,
		log:              log.With("service", "ScoringService"),
		cfg:              cfg,
		relationshipRepo: relationshipRepo,
		platformRepo:     platformRepo,
		ctypeRepo:        ctypeRepo,
		tagRepo:          tagRepo,
		eventRepo:        eventRepo,
	}
}

func (s *scoringService) RecalculateAllRatings(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.platformRepo.ZeroAllRatings(ctx, tx); err != nil {
			return fmt.Errorf("zero platform ratings: %w", err)
		}
		if err := s.ctypeRepo.ZeroAllRatings(ctx, tx); err != nil {
			return fmt.Errorf("zero connection type ratings: %w", err)
		}
		if err := s.tagRepo.ZeroAllRatings(ctx, tx); err != nil {
			return fmt.Errorf("zero tag ratings: %w", err)
		}

		rels, err := s.relationshipRepo.ListWithAssociations(ctx, tx)
		if err != nil {
			return fmt.Errorf("load relationships: %w", err)
		}

		platformScores := map[uint]float64{}
		ctypeScores := map[uint]float64{}
		tagScores := map[uint]float64{}
		for _, rel := range rels {
			baseScore := s.cfg.BaseScore(rel.Priority)
			if baseScore == 0 {
				continue
			}
			for _, social := range rel.SocialMedia {
				platformScores[social.PlatformID] += s.weighted(baseScore, social.IsPrimary)
			}
			for _, assoc := range rel.ConnectionTypeAssociations {
				ctypeScores[assoc.ConnectionTypeID] += s.weighted(baseScore, assoc.IsPrimary)
			}
			for _, assoc := range rel.TagAssociations {
				tagScores[assoc.TagID] += s.weighted(baseScore, assoc.IsPrimary)
			}
		}

		if err := s.platformRepo.SetRatings(ctx, tx, platformScores); err != nil {
			return fmt.Errorf("write platform ratings: %w", err)
		}
		if err := s.ctypeRepo.SetRatings(ctx, tx, ctypeScores); err != nil {
			return fmt.Errorf("write connection type ratings: %w", err)
		}
		if err := s.tagRepo.SetRatings(ctx, tx, tagScores); err != nil {
			return fmt.Errorf("write tag ratings: %w", err)
		}
		return nil
	})
}

func (s *scoringService) RecalculateAllEventImportance(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		events, err := s.eventRepo.ListAll(ctx, tx)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		for _, event := range events {
			score := s.EventImportance(event.Participants)
			if err := s.eventRepo.SetImportance(ctx, tx, event.ID, score); err != nil {
				return fmt.Errorf("write importance for event %s: %w", event.ID, err)
			}
		}
		return nil
	})
}

// EventImportance sums the base priority score of each participant. The
// primary multiplier never applies here.
func (s *scoringService) EventImportance(participants []types.Relationship) float64 {
	var score float64
	for _, p := range participants {
		score += s.cfg.BaseScore(p.Priority)
	}
	return score
}

func (s *scoringService) weighted(baseScore float64, isPrimary bool) float64 {
	if isPrimary {
		return baseScore * s.cfg.PrimaryMultiplier
	}
	return baseScore
}
