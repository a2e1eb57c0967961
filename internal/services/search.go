package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	"github.com/BennetC/Social-Tracker/internal/data/repos/relationships"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
)

// SearchResult is the slim shape returned to the relationship picker.
type SearchResult struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SearchService interface {
	Relationships(ctx context.Context, query, priority string, tagID, connectionTypeID uint) ([]SearchResult, error)
}

type searchService struct {
	db               *gorm.DB
	log              *logger.Logger
	relationshipRepo repos.RelationshipRepo
}

const (
	searchResultLimit  = 50
	defaultSuggestions = 10
)

func NewSearchService(db *gorm.DB, log *logger.Logger, relationshipRepo repos.RelationshipRepo) SearchService {
	return &searchService{
		db:               db,
		log:              log.With("service", "SearchService"),
		relationshipRepo: relationshipRepo,
	}
}

// Relationships matches names and association filters. With no criteria at
// all it falls back to the most frequent event attendees, which makes the
// empty picker useful.
func (s *searchService) Relationships(ctx context.Context, query, priority string, tagID, connectionTypeID uint) ([]SearchResult, error) {
	filter := relationships.SearchFilter{
		NameContains:     strings.ToLower(strings.TrimSpace(query)),
		Priority:         priority,
		TagID:            tagID,
		ConnectionTypeID: connectionTypeID,
	}

	if filter.Empty() {
		rows, err := s.relationshipRepo.TopEventAttendees(ctx, nil, defaultSuggestions)
		if err != nil {
			return nil, fmt.Errorf("top event attendees: %w", err)
		}
		return toSearchResults(rows), nil
	}

	rows, err := s.relationshipRepo.Search(ctx, nil, filter, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("search relationships: %w", err)
	}
	return toSearchResults(rows), nil
}

func toSearchResults(rows []*types.Relationship) []SearchResult {
	out := make([]SearchResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, SearchResult{ID: r.ID, Name: r.Name})
	}
	return out
}
