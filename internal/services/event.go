package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/errorsx"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

// EventInput carries the create/update event form. Dates are "2006-01-02"
// strings, empty meaning unset. Outcome and Learnings are only persisted once
// the event is in the past.
type EventInput struct {
	Title          string
	Details        string
	Priority       string
	StartDate      string
	EndDate        string
	IsPotential    bool
	Pros           string
	Cons           string
	Outcome        string
	Learnings      string
	ParticipantIDs []uuid.UUID
}

// EventBuckets groups events for the events page.
type EventBuckets struct {
	Potential []*types.Event `json:"potential"`
	Upcoming  []*types.Event `json:"upcoming"`
	Past      []*types.Event `json:"past"`
}

// CalendarEntry is one renderable calendar item.
type CalendarEntry struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
	URL   string `json:"url"`
	Class string `json:"class"`
}

type EventService interface {
	Create(ctx context.Context, in EventInput) (*types.Event, error)
	Update(ctx context.Context, id uuid.UUID, in EventInput) (*types.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Buckets(ctx context.Context, now time.Time) (*EventBuckets, error)
	CalendarFeed(ctx context.Context) ([]CalendarEntry, error)
}

type eventService struct {
	db               *gorm.DB
	log              *logger.Logger
	eventRepo        repos.EventRepo
	relationshipRepo repos.RelationshipRepo
	scoring          ScoringService
}

func NewEventService(
	db *gorm.DB,
	log *logger.Logger,
	eventRepo repos.EventRepo,
	relationshipRepo repos.RelationshipRepo,
	scoring ScoringService,
) EventService {
	return &eventService{
		db:               db,
		log:              log.With("service", "EventService"),
		eventRepo:        eventRepo,
		relationshipRepo: relationshipRepo,
		scoring:          scoring,
	}
}

func (s *eventService) Create(ctx context.Context, in EventInput) (*types.Event, error) {
	if in.Title == "" {
		return nil, errorsx.Validation("Event title is required.")
	}
	start, end, err := parseEventDates(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	event := &types.Event{
		Title:       in.Title,
		Details:     in.Details,
		Priority:    defaultString(in.Priority, types.PriorityMedium),
		StartDate:   start,
		EndDate:     end,
		IsPotential: in.IsPotential,
		Pros:        in.Pros,
		Cons:        in.Cons,
	}
	if event.IsPast(time.Now().UTC()) {
		event.Outcome = in.Outcome
		event.Learnings = in.Learnings
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.eventRepo.Create(ctx, tx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		return s.applyParticipants(ctx, tx, event, in.ParticipantIDs)
	}); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, in EventInput) (*types.Event, error) {
	if in.Title == "" {
		return nil, errorsx.Validation("Event title is required.")
	}
	start, end, err := parseEventDates(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	var event *types.Event
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err = s.eventRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load event: %w", err)
		}
		if event == nil {
			return errorsx.ErrNotFound
		}

		event.Title = in.Title
		event.Details = in.Details
		event.Priority = defaultString(in.Priority, types.PriorityMedium)
		event.StartDate = start
		event.EndDate = end
		event.IsPotential = in.IsPotential
		event.Pros = in.Pros
		event.Cons = in.Cons
		if event.IsPast(time.Now().UTC()) {
			event.Outcome = in.Outcome
			event.Learnings = in.Learnings
		}
		if err := s.eventRepo.Save(ctx, tx, event); err != nil {
			return fmt.Errorf("save event: %w", err)
		}
		return s.applyParticipants(ctx, tx, event, in.ParticipantIDs)
	}); err != nil {
		return nil, err
	}
	return event, nil
}

// applyParticipants replaces the attendee set and refreshes the stored
// importance score from the new attendees' base priority scores.
func (s *eventService) applyParticipants(ctx context.Context, tx *gorm.DB, event *types.Event, ids []uuid.UUID) error {
	participants, err := s.relationshipRepo.GetByIDs(ctx, tx, ids)
	if err != nil {
		return fmt.Errorf("load participants: %w", err)
	}
	if err := s.eventRepo.ReplaceParticipants(ctx, tx, event, participants); err != nil {
		return fmt.Errorf("replace participants: %w", err)
	}
	members := make([]types.Relationship, 0, len(participants))
	for _, p := range participants {
		members = append(members, *p)
	}
	score := s.scoring.EventImportance(members)
	if err := s.eventRepo.SetImportance(ctx, tx, event.ID, score); err != nil {
		return fmt.Errorf("set importance: %w", err)
	}
	event.ImportanceScore = score
	return nil
}

func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*types.Event, error) {
	event, err := s.eventRepo.GetDetailByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if event == nil {
		return nil, errorsx.ErrNotFound
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := s.eventRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load event: %w", err)
		}
		if event == nil {
			return errorsx.ErrNotFound
		}
		return s.eventRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{id})
	})
}

func (s *eventService) Buckets(ctx context.Context, now time.Time) (*EventBuckets, error) {
	potential, err := s.eventRepo.ListPotential(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list potential events: %w", err)
	}
	upcoming, err := s.eventRepo.ListUpcoming(ctx, nil, now)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	past, err := s.eventRepo.ListPast(ctx, nil, now)
	if err != nil {
		return nil, fmt.Errorf("list past events: %w", err)
	}
	return &EventBuckets{Potential: potential, Upcoming: upcoming, Past: past}, nil
}

func (s *eventService) CalendarFeed(ctx context.Context) ([]CalendarEntry, error) {
	all, err := s.eventRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	entries := make([]CalendarEntry, 0, len(all))
	for _, event := range all {
		if event.StartDate == nil {
			continue
		}
		entry := CalendarEntry{
			Title: event.Title,
			Start: event.StartDate.Format("2006-01-02"),
			URL:   fmt.Sprintf("/events/%s", event.ID),
			Class: "event-confirmed",
		}
		if event.IsPotential {
			entry.Class = "event-potential"
		}
		if event.EndDate != nil {
			entry.End = event.EndDate.Format("2006-01-02")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseEventDates validates the form date strings. An end date before the
// start date is rejected.
func parseEventDates(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startDate != "" {
		t, err := time.ParseInLocation("2006-01-02", startDate, time.UTC)
		if err != nil {
			return nil, nil, errorsx.Validation("Invalid start date format. Use YYYY-MM-DD.")
		}
		start = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation("2006-01-02", endDate, time.UTC)
		if err != nil {
			return nil, nil, errorsx.Validation("Invalid end date format. Use YYYY-MM-DD.")
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, errorsx.Validation("End date cannot be before the start date.")
	}
	return start, end, nil
}
