package app

import (
	"github.com/gin-gonic/gin"

	"github.com/BennetC/Social-Tracker/internal/server"
)

func wireRouter(h Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		HealthcheckHandler:  h.Healthcheck,
		RelationshipHandler: h.Relationship,
		InteractionHandler:  h.Interaction,
		FollowUpHandler:     h.FollowUp,
		EventHandler:        h.Event,
		CatalogHandler:      h.Catalog,
		SearchHandler:       h.Search,
		AdminHandler:        h.Admin,
	})
}
