package app

import (
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

type Services struct {
	Scoring      services.ScoringService
	Relationship services.RelationshipService
	Interaction  services.InteractionService
	FollowUp     services.FollowUpService
	Event        services.EventService
	Catalog      services.CatalogService
	Search       services.SearchService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	scoringSvc := services.NewScoringService(db, log, cfg.Scoring, r.Relationship, r.Platform, r.ConnectionType, r.Tag, r.Event)
	return Services{
		Scoring: scoringSvc,
		Relationship: services.NewRelationshipService(
			db, log, cfg.Scoring,
			r.Relationship, r.Interaction, r.FollowUp,
			r.ConnectionType, r.CTypeAssoc, r.Tag, r.TagAssoc,
			r.Platform, r.SocialMedia,
			scoringSvc,
		),
		Interaction: services.NewInteractionService(db, log, r.Relationship, r.Interaction, r.FollowUp),
		FollowUp:    services.NewFollowUpService(db, log, r.Relationship, r.FollowUp),
		Event:       services.NewEventService(db, log, r.Event, r.Relationship, scoringSvc),
		Catalog:     services.NewCatalogService(db, log, cfg.Scoring, r.Platform, r.ConnectionType, r.Tag),
		Search:      services.NewSearchService(db, log, r.Relationship),
	}
}
