package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/errorsx"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/scoring"
)

// RelationshipInput mirrors the add/edit relationship form.
type RelationshipInput struct {
	Name              string
	Goal              string
	ExecutionStrategy string
	Notes             string
	Priority          string
	InteractionLevel  string
	FollowUpFrequency string

	ConnectionTypeIDs []string
	PrimaryCTypeID    string
	Tags              string
	PrimaryTagName    string
	SocialMedia       SocialMediaInput
}

// RelationshipDetail bundles a relationship with its pending follow-ups for
// the detail view.
type RelationshipDetail struct {
	Relationship     *types.Relationship `json:"relationship"`
	PendingFollowUps []types.FollowUp    `json:"pending_follow_ups"`
}

type RelationshipService interface {
	Create(ctx context.Context, in RelationshipInput) (*types.Relationship, error)
	Update(ctx context.Context, id uuid.UUID, in RelationshipInput) (*types.Relationship, error)
	Get(ctx context.Context, id uuid.UUID) (*RelationshipDetail, error)
	List(ctx context.Context) ([]*types.Relationship, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type relationshipService struct {
	db               *gorm.DB
	log              *logger.Logger
	relationshipRepo repos.RelationshipRepo
	interactionRepo  repos.InteractionRepo
	followUpRepo     repos.FollowUpRepo
	reconciler       *associationReconciler
	scoringService   ScoringService
}

func NewRelationshipService(
	db *gorm.DB,
	log *logger.Logger,
	cfg scoring.Config,
	relationshipRepo repos.RelationshipRepo,
	interactionRepo repos.InteractionRepo,
	followUpRepo repos.FollowUpRepo,
	ctypeRepo repos.ConnectionTypeRepo,
	ctypeAssocs repos.ConnectionTypeAssocRepo,
	tagRepo repos.TagRepo,
	tagAssocs repos.TagAssocRepo,
	platformRepo repos.PlatformRepo,
	socialRepo repos.SocialMediaRepo,
	scoringService ScoringService,
) RelationshipService {
	serviceLog := log.With("service", "RelationshipService")
	return &relationshipService{
		db:               db,
		log:              serviceLog,
		relationshipRepo: relationshipRepo,
		interactionRepo:  interactionRepo,
		followUpRepo:     followUpRepo,
		reconciler:       newAssociationReconciler(serviceLog, cfg, ctypeRepo, ctypeAssocs, tagRepo, tagAssocs, platformRepo, socialRepo),
		scoringService:   scoringService,
	}
}

func (s *relationshipService) Create(ctx context.Context, in RelationshipInput) (*types.Relationship, error) {
	if in.Name == "" {
		return nil, errorsx.Validation("Full Name is a required field.")
	}

	rel := &types.Relationship{
		Name:              in.Name,
		Goal:              in.Goal,
		ExecutionStrategy: in.ExecutionStrategy,
		Notes:             in.Notes,
		Priority:          defaultString(in.Priority, types.PriorityMedium),
		InteractionLevel:  defaultString(in.InteractionLevel, types.InteractionLevelNotContacted),
		FollowUpFrequency: in.FollowUpFrequency,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.relationshipRepo.Create(ctx, tx, rel); err != nil {
			return fmt.Errorf("create relationship: %w", err)
		}
		return s.reconcileAll(ctx, tx, rel.ID, in)
	}); err != nil {
		return nil, err
	}

	s.recalculate(ctx)
	return rel, nil
}

func (s *relationshipService) Update(ctx context.Context, id uuid.UUID, in RelationshipInput) (*types.Relationship, error) {
	if in.Name == "" {
		return nil, errorsx.Validation("Full Name is a required field.")
	}

	var rel *types.Relationship
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.relationshipRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load relationship: %w", err)
		}
		if existing == nil {
			return errorsx.ErrNotFound
		}

		existing.Name = in.Name
		existing.Goal = in.Goal
		existing.ExecutionStrategy = in.ExecutionStrategy
		existing.Notes = in.Notes
		existing.Priority = defaultString(in.Priority, types.PriorityMedium)
		existing.InteractionLevel = defaultString(in.InteractionLevel, types.InteractionLevelNotContacted)
		existing.FollowUpFrequency = in.FollowUpFrequency
		if err := s.relationshipRepo.Save(ctx, tx, existing); err != nil {
			return fmt.Errorf("save relationship: %w", err)
		}

		rel = existing
		return s.reconcileAll(ctx, tx, existing.ID, in)
	}); err != nil {
		return nil, err
	}

	s.recalculate(ctx)
	return rel, nil
}

func (s *relationshipService) reconcileAll(ctx context.Context, tx *gorm.DB, id uuid.UUID, in RelationshipInput) error {
	if err := s.reconciler.reconcileConnectionTypes(ctx, tx, id, in.ConnectionTypeIDs, in.PrimaryCTypeID); err != nil {
		return err
	}
	if err := s.reconciler.reconcileTags(ctx, tx, id, in.Tags, in.PrimaryTagName); err != nil {
		return err
	}
	return s.reconciler.reconcileSocialMedia(ctx, tx, id, in.SocialMedia)
}

// recalculate refreshes every derived score after a relationship mutation,
// so listings are never more than one request stale.
func (s *relationshipService) recalculate(ctx context.Context) {
	if err := s.scoringService.RecalculateAllRatings(ctx); err != nil {
		s.log.Error("Rating recalculation failed", "error", err)
	}
	if err := s.scoringService.RecalculateAllEventImportance(ctx); err != nil {
		s.log.Error("Event importance recalculation failed", "error", err)
	}
}

func (s *relationshipService) Get(ctx context.Context, id uuid.UUID) (*RelationshipDetail, error) {
	rel, err := s.relationshipRepo.GetDetailByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load relationship: %w", err)
	}
	if rel == nil {
		return nil, errorsx.ErrNotFound
	}
	return &RelationshipDetail{
		Relationship:     rel,
		PendingFollowUps: rel.PendingFollowUps(),
	}, nil
}

// List returns every relationship in dashboard order: earliest pending
// follow-up due date first (none sort last), then priority rank descending.
func (s *relationshipService) List(ctx context.Context) ([]*types.Relationship, error) {
	rels, err := s.relationshipRepo.ListWithAssociations(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load relationships: %w", err)
	}

	sort.SliceStable(rels, func(i, j int) bool {
		di, iOK := earliestPendingDue(rels[i])
		dj, jOK := earliestPendingDue(rels[j])
		if iOK != jOK {
			return iOK
		}
		if iOK && jOK && di != dj {
			return di < dj
		}
		return types.PriorityRank(rels[i].Priority) > types.PriorityRank(rels[j].Priority)
	})
	return rels, nil
}

func (s *relationshipService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rel, err := s.relationshipRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load relationship: %w", err)
		}
		if rel == nil {
			return errorsx.ErrNotFound
		}

		ids := []uuid.UUID{id}
		if err := s.reconciler.ctypeAssocs.FullDeleteByRelationshipIDs(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.reconciler.tagAssocs.FullDeleteByRelationshipIDs(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.reconciler.socialRepo.FullDeleteByRelationshipIDs(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.interactionRepo.FullDeleteByRelationshipIDs(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.followUpRepo.FullDeleteByRelationshipIDs(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.relationshipRepo.RemoveFromAllEvents(ctx, tx, id); err != nil {
			return err
		}
		return s.relationshipRepo.FullDeleteByIDs(ctx, tx, ids)
	}); err != nil {
		return err
	}

	s.recalculate(ctx)
	return nil
}

func earliestPendingDue(rel *types.Relationship) (due int64, ok bool) {
	for _, f := range rel.FollowUps {
		if f.Status != types.FollowUpStatusPending {
			continue
		}
		if !ok || f.DueDate.Unix() < due {
			due = f.DueDate.Unix()
			ok = true
		}
	}
	return due, ok
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
