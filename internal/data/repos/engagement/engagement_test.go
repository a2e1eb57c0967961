package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/BennetC/Social-Tracker/internal/data/repos/testutil"
	types "github.com/BennetC/Social-Tracker/internal/domain"
)

func TestFollowUpPendingFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewFollowUpRepo(tx, testutil.Logger(t))

	rel := testutil.SeedRelationship(t, ctx, tx, "Alice", types.PriorityHigh)
	other := testutil.SeedRelationship(t, ctx, tx, "Bob", types.PriorityLow)

	now := time.Now().UTC().Truncate(time.Second)
	later := testutil.SeedFollowUp(t, ctx, tx, rel.ID, "later", now.Add(48*time.Hour))
	sooner := testutil.SeedFollowUp(t, ctx, tx, rel.ID, "sooner", now.Add(time.Hour))
	done := testutil.SeedFollowUp(t, ctx, tx, rel.ID, "done", now)
	testutil.SeedFollowUp(t, ctx, tx, other.ID, "elsewhere", now)

	completed := now
	if err := repo.UpdateFields(ctx, tx, done.ID, map[string]interface{}{
		"status":       types.FollowUpStatusCompleted,
		"completed_at": &completed,
	}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	pending, err := repo.GetPendingByRelationshipID(ctx, tx, rel.ID)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending count: want=2 got=%d", len(pending))
	}
	if pending[0].ID != sooner.ID || pending[1].ID != later.ID {
		t.Fatalf("pending order: %+v", pending)
	}

	none, err := repo.GetPendingByRelationshipID(ctx, tx, uuid.Nil)
	if err != nil || len(none) != 0 {
		t.Fatalf("nil relationship: want no rows, got %v,%v", none, err)
	}
}

func TestFollowUpDeleteByRelationship(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewFollowUpRepo(tx, testutil.Logger(t))

	rel := testutil.SeedRelationship(t, ctx, tx, "Alice", types.PriorityHigh)
	keep := testutil.SeedRelationship(t, ctx, tx, "Bob", types.PriorityLow)

	due := time.Now().UTC().Add(time.Hour)
	testutil.SeedFollowUp(t, ctx, tx, rel.ID, "a", due)
	testutil.SeedFollowUp(t, ctx, tx, rel.ID, "b", due)
	kept := testutil.SeedFollowUp(t, ctx, tx, keep.ID, "c", due)

	if err := repo.FullDeleteByRelationshipIDs(ctx, tx, []uuid.UUID{rel.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	gone, err := repo.GetPendingByRelationshipID(ctx, tx, rel.ID)
	if err != nil || len(gone) != 0 {
		t.Fatalf("expected no rows for deleted relationship, got %v,%v", gone, err)
	}
	still, err := repo.GetByID(ctx, tx, kept.ID)
	if err != nil || still == nil {
		t.Fatalf("unrelated follow-up lost: %v,%v", still, err)
	}
}

func TestInteractionCrud(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewInteractionRepo(tx, testutil.Logger(t))

	rel := testutil.SeedRelationship(t, ctx, tx, "Alice", types.PriorityHigh)

	row, err := repo.Create(ctx, tx, &types.InteractionHistory{
		RelationshipID: rel.ID,
		Title:          "Coffee",
		Type:           "in_person",
		Date:           time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateFields(ctx, tx, row.ID, map[string]interface{}{"title": "Lunch"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetDetailByID(ctx, tx, row.ID)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}
	if got.Title != "Lunch" {
		t.Fatalf("title: want=Lunch got=%q", got.Title)
	}
	if got.Relationship == nil || got.Relationship.Name != "Alice" {
		t.Fatalf("detail should preload relationship: %+v", got.Relationship)
	}

	if err := repo.FullDeleteByRelationshipIDs(ctx, tx, []uuid.UUID{rel.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	missing, err := repo.GetByID(ctx, tx, row.ID)
	if err != nil || missing != nil {
		t.Fatalf("after delete: want nil,nil got %v,%v", missing, err)
	}
}
