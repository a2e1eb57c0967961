package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	"github.com/BennetC/Social-Tracker/internal/data/repos/testutil"
	"github.com/BennetC/Social-Tracker/internal/scoring"
)

// testEnv wires every service over a single rolled-back transaction so
// tests cannot leak rows into each other.
type testEnv struct {
	ctx context.Context
	tx  *gorm.DB
	cfg scoring.Config

	relationshipRepo repos.RelationshipRepo
	socialRepo       repos.SocialMediaRepo
	ctypeAssocRepo   repos.ConnectionTypeAssocRepo
	tagAssocRepo     repos.TagAssocRepo
	platformRepo     repos.PlatformRepo
	ctypeRepo        repos.ConnectionTypeRepo
	tagRepo          repos.TagRepo
	interactionRepo  repos.InteractionRepo
	followUpRepo     repos.FollowUpRepo
	eventRepo        repos.EventRepo

	scoringSvc      ScoringService
	relationshipSvc RelationshipService
	interactionSvc  InteractionService
	followUpSvc     FollowUpService
	eventSvc        EventService
	catalogSvc      CatalogService
	searchSvc       SearchService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	cfg := scoring.DefaultConfig()

	env := &testEnv{
		ctx: context.Background(),
		tx:  tx,
		cfg: cfg,

		relationshipRepo: repos.NewRelationshipRepo(tx, log),
		socialRepo:       repos.NewSocialMediaRepo(tx, log),
		ctypeAssocRepo:   repos.NewConnectionTypeAssocRepo(tx, log),
		tagAssocRepo:     repos.NewTagAssocRepo(tx, log),
		platformRepo:     repos.NewPlatformRepo(tx, log),
		ctypeRepo:        repos.NewConnectionTypeRepo(tx, log),
		tagRepo:          repos.NewTagRepo(tx, log),
		interactionRepo:  repos.NewInteractionRepo(tx, log),
		followUpRepo:     repos.NewFollowUpRepo(tx, log),
		eventRepo:        repos.NewEventRepo(tx, log),
	}

	env.scoringSvc = NewScoringService(tx, log, cfg, env.relationshipRepo, env.platformRepo, env.ctypeRepo, env.tagRepo, env.eventRepo)
	env.relationshipSvc = NewRelationshipService(
		tx, log, cfg,
		env.relationshipRepo, env.interactionRepo, env.followUpRepo,
		env.ctypeRepo, env.ctypeAssocRepo, env.tagRepo, env.tagAssocRepo,
		env.platformRepo, env.socialRepo,
		env.scoringSvc,
	)
	env.interactionSvc = NewInteractionService(tx, log, env.relationshipRepo, env.interactionRepo, env.followUpRepo)
	env.followUpSvc = NewFollowUpService(tx, log, env.relationshipRepo, env.followUpRepo)
	env.eventSvc = NewEventService(tx, log, env.eventRepo, env.relationshipRepo, env.scoringSvc)
	env.catalogSvc = NewCatalogService(tx, log, cfg, env.platformRepo, env.ctypeRepo, env.tagRepo)
	env.searchSvc = NewSearchService(tx, log, env.relationshipRepo)
	return env
}
