package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

type FollowUpHandler struct {
	log         *logger.Logger
	followUpSvc services.FollowUpService
}

func NewFollowUpHandler(log *logger.Logger, followUpSvc services.FollowUpService) *FollowUpHandler {
	return &FollowUpHandler{
		log:         log.With("handler", "FollowUpHandler"),
		followUpSvc: followUpSvc,
	}
}

// POST /relationships/:id/follow-ups
func (h *FollowUpHandler) Add(c *gin.Context) {
	relID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid relationship id"))
		return
	}
	followUp, err := h.followUpSvc.Add(c.Request.Context(), relID, c.PostForm("topic"), c.PostForm("due_date"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"follow_up": followUp})
}

// DELETE /follow-ups/:id
func (h *FollowUpHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.followUpSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
