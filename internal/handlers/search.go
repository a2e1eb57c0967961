package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

type SearchHandler struct {
	log       *logger.Logger
	searchSvc services.SearchService
}

func NewSearchHandler(log *logger.Logger, searchSvc services.SearchService) *SearchHandler {
	return &SearchHandler{
		log:       log.With("handler", "SearchHandler"),
		searchSvc: searchSvc,
	}
}

// GET /api/relationships/search?q=&priority=&tag_id=&ctype_id=
func (h *SearchHandler) Relationships(c *gin.Context) {
	tagID, _ := strconv.ParseUint(c.Query("tag_id"), 10, 32)
	ctypeID, _ := strconv.ParseUint(c.Query("ctype_id"), 10, 32)
	results, err := h.searchSvc.Relationships(
		c.Request.Context(),
		c.Query("q"), c.Query("priority"), uint(tagID), uint(ctypeID),
	)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": results})
}
