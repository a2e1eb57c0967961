package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

type RelationshipHandler struct {
	log             *logger.Logger
	relationshipSvc services.RelationshipService
}

func NewRelationshipHandler(log *logger.Logger, relationshipSvc services.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{
		log:             log.With("handler", "RelationshipHandler"),
		relationshipSvc: relationshipSvc,
	}
}

// GET /relationships
// Dashboard list: due follow-ups first, then by priority.
func (h *RelationshipHandler) List(c *gin.Context) {
	rels, err := h.relationshipSvc.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"relationships": rels})
}

// POST /relationships
func (h *RelationshipHandler) Create(c *gin.Context) {
	rel, err := h.relationshipSvc.Create(c.Request.Context(), bindRelationshipForm(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"relationship": rel})
}

// GET /relationships/:id
func (h *RelationshipHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid relationship id"))
		return
	}
	detail, err := h.relationshipSvc.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, detail)
}

// POST /relationships/:id
func (h *RelationshipHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid relationship id"))
		return
	}
	rel, err := h.relationshipSvc.Update(c.Request.Context(), id, bindRelationshipForm(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"relationship": rel})
}

// DELETE /relationships/:id
func (h *RelationshipHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid relationship id"))
		return
	}
	if err := h.relationshipSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// bindRelationshipForm reads the add/edit form. Social-media fields arrive as
// parallel arrays; the reconciler zips them back together.
func bindRelationshipForm(c *gin.Context) services.RelationshipInput {
	return services.RelationshipInput{
		Name:              c.PostForm("name"),
		Goal:              c.PostForm("goal"),
		ExecutionStrategy: c.PostForm("execution_strategy"),
		Notes:             c.PostForm("notes"),
		Priority:          c.PostForm("priority"),
		InteractionLevel:  c.PostForm("interaction_level"),
		FollowUpFrequency: c.PostForm("follow_up_frequency"),

		ConnectionTypeIDs: c.PostFormArray("connection_type_ids"),
		PrimaryCTypeID:    c.PostForm("primary_connection_type"),
		Tags:              c.PostForm("tags"),
		PrimaryTagName:    c.PostForm("primary_tag_name"),
		SocialMedia: services.SocialMediaInput{
			Platforms:    c.PostFormArray("platform[]"),
			Handles:      c.PostFormArray("handle[]"),
			Links:        c.PostFormArray("profile_link[]"),
			PrimarySlots: c.PostFormArray("is_primary"),
			CustomNames:  c.PostFormArray("custom_platform_name[]"),
			CustomRules:  c.PostFormArray("custom_platform_rule[]"),
		},
	}
}
