package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/BennetC/Social-Tracker/internal/domain"
)

func SeedRelationship(tb testing.TB, ctx context.Context, tx *gorm.DB, name, priority string) *types.Relationship {
	tb.Helper()
	r := &types.Relationship{
		ID:               uuid.New(),
		Name:             name,
		Priority:         priority,
		InteractionLevel: types.InteractionLevelNotContacted,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed relationship: %v", err)
	}
	return r
}

func SeedPlatform(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, requiresHandle, requiresLink bool) *types.Platform {
	tb.Helper()
	p := &types.Platform{
		Name:           name,
		RequiresHandle: requiresHandle,
		RequiresLink:   requiresLink,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed platform: %v", err)
	}
	return p
}

func SeedConnectionType(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.ConnectionType {
	tb.Helper()
	ct := &types.ConnectionType{Name: name}
	if err := tx.WithContext(ctx).Create(ct).Error; err != nil {
		tb.Fatalf("seed connection type: %v", err)
	}
	return ct
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Tag {
	tb.Helper()
	tag := &types.Tag{Name: name}
	if err := tx.WithContext(ctx).Create(tag).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return tag
}

func SeedEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, start *time.Time) *types.Event {
	tb.Helper()
	e := &types.Event{
		ID:        uuid.New(),
		Title:     title,
		Priority:  types.PriorityMedium,
		StartDate: start,
	}
	if err := tx.WithContext(ctx).Omit("Participants").Create(e).Error; err != nil {
		tb.Fatalf("seed event: %v", err)
	}
	return e
}

func SeedFollowUp(tb testing.TB, ctx context.Context, tx *gorm.DB, relationshipID uuid.UUID, topic string, due time.Time) *types.FollowUp {
	tb.Helper()
	f := &types.FollowUp{
		RelationshipID: relationshipID,
		Topic:          topic,
		DueDate:        due,
		Status:         types.FollowUpStatusPending,
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed follow up: %v", err)
	}
	return f
}
