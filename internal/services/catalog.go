package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/errorsx"
	"github.com/BennetC/Social-Tracker/internal/pkg/logger"
	"github.com/BennetC/Social-Tracker/internal/scoring"
)

// CatalogService serves the shared lookup tables: platforms, connection
// types, and tags. Seed makes the scoring config's platform rules and
// connection types present in the database.
type CatalogService interface {
	ListPlatforms(ctx context.Context) ([]*types.Platform, error)
	ListPlatformsByName(ctx context.Context) ([]*types.Platform, error)
	ListConnectionTypes(ctx context.Context) ([]*types.ConnectionType, error)
	CreateConnectionType(ctx context.Context, name string) (*types.ConnectionType, error)
	TopTags(ctx context.Context) ([]*types.Tag, error)
	RecentTags(ctx context.Context) ([]*types.Tag, error)
	Seed(ctx context.Context) error
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	cfg          scoring.Config
	platformRepo repos.PlatformRepo
	ctypeRepo    repos.ConnectionTypeRepo
	tagRepo      repos.TagRepo
}

const topTagLimit = 15

func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	cfg scoring.Config,
	platformRepo repos.PlatformRepo,
	ctypeRepo repos.ConnectionTypeRepo,
	tagRepo repos.TagRepo,
) CatalogService {
	return &catalogService{
		db:           db,
		log:          log.With("service", "CatalogService"),
		cfg:          cfg,
		platformRepo: platformRepo,
		ctypeRepo:    ctypeRepo,
		tagRepo:      tagRepo,
	}
}

func (s *catalogService) ListPlatforms(ctx context.Context) ([]*types.Platform, error) {
	return s.platformRepo.ListByRating(ctx, nil)
}

func (s *catalogService) ListPlatformsByName(ctx context.Context) ([]*types.Platform, error) {
	return s.platformRepo.ListByName(ctx, nil)
}

func (s *catalogService) ListConnectionTypes(ctx context.Context) ([]*types.ConnectionType, error) {
	return s.ctypeRepo.ListByName(ctx, nil)
}

func (s *catalogService) CreateConnectionType(ctx context.Context, name string) (*types.ConnectionType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errorsx.Validation("Connection type name cannot be empty.")
	}
	ctype, err := s.ctypeRepo.Create(ctx, nil, &types.ConnectionType{Name: name})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorsx.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create connection type: %w", err)
	}
	return ctype, nil
}

func (s *catalogService) TopTags(ctx context.Context) ([]*types.Tag, error) {
	return s.tagRepo.TopByRating(ctx, nil, topTagLimit)
}

// RecentTags mirrors TopTags: recency is tracked through the rating a tag
// accumulates, not insertion order.
func (s *catalogService) RecentTags(ctx context.Context) ([]*types.Tag, error) {
	return s.tagRepo.TopByRating(ctx, nil, topTagLimit)
}

// Seed upserts the configured platform rules and inserts any missing
// connection types. Existing platform ratings are untouched. Safe to run on
// every startup.
func (s *catalogService) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		names := make([]string, 0, len(s.cfg.PlatformRules))
		for name := range s.cfg.PlatformRules {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rule := s.cfg.PlatformRules[name]
			existing, err := s.platformRepo.GetByName(ctx, tx, name)
			if err != nil {
				return fmt.Errorf("look up platform %q: %w", name, err)
			}
			if existing == nil {
				if _, err := s.platformRepo.Create(ctx, tx, &types.Platform{
					Name:           name,
					RequiresHandle: rule.RequiresHandle,
					RequiresLink:   rule.RequiresLink,
				}); err != nil {
					return fmt.Errorf("create platform %q: %w", name, err)
				}
				continue
			}
			if existing.RequiresHandle != rule.RequiresHandle || existing.RequiresLink != rule.RequiresLink {
				if err := s.platformRepo.UpdateRules(ctx, tx, existing.ID, rule.RequiresHandle, rule.RequiresLink); err != nil {
					return fmt.Errorf("update platform %q: %w", name, err)
				}
			}
		}

		for _, name := range s.cfg.ConnectionTypes {
			existing, err := s.ctypeRepo.GetByName(ctx, tx, name)
			if err != nil {
				return fmt.Errorf("look up connection type %q: %w", name, err)
			}
			if existing != nil {
				continue
			}
			if _, err := s.ctypeRepo.Create(ctx, tx, &types.ConnectionType{Name: name}); err != nil {
				return fmt.Errorf("create connection type %q: %w", name, err)
			}
		}
		return nil
	})
}
