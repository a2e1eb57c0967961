package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

type CatalogHandler struct {
	log        *logger.Logger
	catalogSvc services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogSvc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		log:        log.With("handler", "CatalogHandler"),
		catalogSvc: catalogSvc,
	}
}

// GET /platforms
// Ordered by priority rating so the hottest platforms lead.
func (h *CatalogHandler) ListPlatforms(c *gin.Context) {
	platforms, err := h.catalogSvc.ListPlatforms(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"platforms": platforms})
}

// GET /connection-types
func (h *CatalogHandler) ListConnectionTypes(c *gin.Context) {
	ctypes, err := h.catalogSvc.ListConnectionTypes(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"connection_types": ctypes})
}

// POST /connection-types
func (h *CatalogHandler) CreateConnectionType(c *gin.Context) {
	ctype, err := h.catalogSvc.CreateConnectionType(c.Request.Context(), c.PostForm("name"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"connection_type": ctype})
}

// GET /api/tags/popular
func (h *CatalogHandler) TopTags(c *gin.Context) {
	tags, err := h.catalogSvc.TopTags(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"tags": tags})
}

// GET /api/tags/recent
func (h *CatalogHandler) RecentTags(c *gin.Context) {
	tags, err := h.catalogSvc.RecentTags(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"tags": tags})
}
