package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

type InteractionHandler struct {
	log            *logger.Logger
	interactionSvc services.InteractionService
}

func NewInteractionHandler(log *logger.Logger, interactionSvc services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		log:            log.With("handler", "InteractionHandler"),
		interactionSvc: interactionSvc,
	}
}

// POST /relationships/:id/interactions
func (h *InteractionHandler) Log(c *gin.Context) {
	relID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid relationship id"))
		return
	}
	completedID, _ := strconv.Atoi(c.PostForm("completed_follow_up_id"))
	interaction, err := h.interactionSvc.Log(c.Request.Context(), relID, services.LogInteractionInput{
		Title:               c.PostForm("title"),
		Type:                c.PostForm("type"),
		Platform:            c.PostForm("platform"),
		Details:             c.PostForm("details"),
		CompletedFollowUpID: uint(completedID),
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"interaction": interaction})
}

// GET /interactions/:id
func (h *InteractionHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	interaction, err := h.interactionSvc.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"interaction": interaction})
}

// POST /interactions/:id
func (h *InteractionHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	interaction, err := h.interactionSvc.Update(
		c.Request.Context(), id,
		c.PostForm("title"), c.PostForm("details"), c.PostForm("type"), c.PostForm("platform"),
	)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"interaction": interaction})
}

// DELETE /interactions/:id
func (h *InteractionHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.interactionSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid "+name))
		return 0, false
	}
	return uint(v), true
}
