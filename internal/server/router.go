package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/BennetC/Social-Tracker/internal/handlers"
)

type RouterConfig struct {
	HealthcheckHandler  *handlers.HealthcheckHandler
	RelationshipHandler *handlers.RelationshipHandler
	InteractionHandler  *handlers.InteractionHandler
	FollowUpHandler     *handlers.FollowUpHandler
	EventHandler        *handlers.EventHandler
	CatalogHandler      *handlers.CatalogHandler
	SearchHandler       *handlers.SearchHandler
	AdminHandler        *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("social-tracker"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthcheckHandler.Check)

	// Relationships
	router.GET("/relationships", cfg.RelationshipHandler.List)
	router.POST("/relationships", cfg.RelationshipHandler.Create)
	router.GET("/relationships/:id", cfg.RelationshipHandler.Get)
	router.POST("/relationships/:id", cfg.RelationshipHandler.Update)
	router.DELETE("/relationships/:id", cfg.RelationshipHandler.Delete)
	router.POST("/relationships/:id/interactions", cfg.InteractionHandler.Log)
	router.POST("/relationships/:id/follow-ups", cfg.FollowUpHandler.Add)

	// Interactions and follow-ups
	router.GET("/interactions/:id", cfg.InteractionHandler.Get)
	router.POST("/interactions/:id", cfg.InteractionHandler.Update)
	router.DELETE("/interactions/:id", cfg.InteractionHandler.Delete)
	router.DELETE("/follow-ups/:id", cfg.FollowUpHandler.Delete)

	// Events
	router.GET("/events", cfg.EventHandler.List)
	router.POST("/events", cfg.EventHandler.Create)
	router.GET("/events/:id", cfg.EventHandler.Get)
	router.POST("/events/:id", cfg.EventHandler.Update)
	router.DELETE("/events/:id", cfg.EventHandler.Delete)

	// Catalog
	router.GET("/platforms", cfg.CatalogHandler.ListPlatforms)
	router.GET("/connection-types", cfg.CatalogHandler.ListConnectionTypes)
	router.POST("/connection-types", cfg.CatalogHandler.CreateConnectionType)

	// Lookup endpoints for the frontend widgets
	api := router.Group("/api")
	{
		api.GET("/tags/recent", cfg.CatalogHandler.RecentTags)
		api.GET("/tags/popular", cfg.CatalogHandler.TopTags)
		api.GET("/relationships/search", cfg.SearchHandler.Relationships)
		api.GET("/events/calendar", cfg.EventHandler.Calendar)
	}

	// Maintenance
	admin := router.Group("/admin")
	{
		admin.POST("/recalculate-ratings", cfg.AdminHandler.RecalculateRatings)
		admin.POST("/recalculate-importance", cfg.AdminHandler.RecalculateImportance)
	}

	return router
}
