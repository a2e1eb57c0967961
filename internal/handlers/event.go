package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/services"
)

type EventHandler struct {
	log      *logger.Logger
	eventSvc services.EventService
}

func NewEventHandler(log *logger.Logger, eventSvc services.EventService) *EventHandler {
	return &EventHandler{
		log:      log.With("handler", "EventHandler"),
		eventSvc: eventSvc,
	}
}

// GET /events
// Potential, upcoming, and past buckets for the events page.
func (h *EventHandler) List(c *gin.Context) {
	buckets, err := h.eventSvc.Buckets(c.Request.Context(), time.Now().UTC())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, buckets)
}

// GET /api/events/calendar
func (h *EventHandler) Calendar(c *gin.Context) {
	entries, err := h.eventSvc.CalendarFeed(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entries)
}

// POST /events
func (h *EventHandler) Create(c *gin.Context) {
	event, err := h.eventSvc.Create(c.Request.Context(), bindEventForm(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"event": event})
}

// GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid event id"))
		return
	}
	event, err := h.eventSvc.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"event": event})
}

// POST /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid event id"))
		return
	}
	event, err := h.eventSvc.Update(c.Request.Context(), id, bindEventForm(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"event": event})
}

// DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid event id"))
		return
	}
	if err := h.eventSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

func bindEventForm(c *gin.Context) services.EventInput {
	in := services.EventInput{
		Title:       c.PostForm("title"),
		Details:     c.PostForm("details"),
		Priority:    c.PostForm("priority"),
		StartDate:   c.PostForm("start_date"),
		EndDate:     c.PostForm("end_date"),
		IsPotential: c.PostForm("is_potential") != "",
		Pros:        c.PostForm("pros"),
		Cons:        c.PostForm("cons"),
		Outcome:     c.PostForm("outcome"),
		Learnings:   c.PostForm("learnings"),
	}
	for _, raw := range c.PostFormArray("participants") {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		in.ParticipantIDs = append(in.ParticipantIDs, id)
	}
	return in
}
