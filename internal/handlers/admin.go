package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

// AdminHandler exposes the maintenance recalculations over HTTP. The same
// operations ship as CLI commands under cmd/recalculate.
type AdminHandler struct {
	log        *logger.Logger
	scoringSvc services.ScoringService
}

func NewAdminHandler(log *logger.Logger, scoringSvc services.ScoringService) *AdminHandler {
	return &AdminHandler{
		log:        log.With("handler", "AdminHandler"),
		scoringSvc: scoringSvc,
	}
}

// POST /admin/recalculate-ratings
func (h *AdminHandler) RecalculateRatings(c *gin.Context) {
	if err := h.scoringSvc.RecalculateAllRatings(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"recalculated": "ratings"})
}

// POST /admin/recalculate-importance
func (h *AdminHandler) RecalculateImportance(c *gin.Context) {
	if err := h.scoringSvc.RecalculateAllEventImportance(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"recalculated": "event_importance"})
}
