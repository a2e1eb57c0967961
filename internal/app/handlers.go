package app

import (
	"github.com/BennetC/Social-Tracker/internal/handlers"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

type Handlers struct {
	Healthcheck  *handlers.HealthcheckHandler
	Relationship *handlers.RelationshipHandler
	Interaction  *handlers.InteractionHandler
	FollowUp     *handlers.FollowUpHandler
	Event        *handlers.EventHandler
	Catalog      *handlers.CatalogHandler
	Search       *handlers.SearchHandler
	Admin        *handlers.AdminHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Healthcheck:  handlers.NewHealthcheckHandler(),
		Relationship: handlers.NewRelationshipHandler(log, s.Relationship),
		Interaction:  handlers.NewInteractionHandler(log, s.Interaction),
		FollowUp:     handlers.NewFollowUpHandler(log, s.FollowUp),
		Event:        handlers.NewEventHandler(log, s.Event),
		Catalog:      handlers.NewCatalogHandler(log, s.Catalog),
		Search:       handlers.NewSearchHandler(log, s.Search),
		Admin:        handlers.NewAdminHandler(log, s.Scoring),
	}
}
