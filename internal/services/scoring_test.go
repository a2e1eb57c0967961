package services

import (
	"testing"

	"github.com/BennetC/Social-Tracker/internal/data/repos/testutil"
	types "github.com/BennetC/Social-Tracker/internal/domain"
)

func TestRecalculateAllRatingsPrimaryMultiplier(t *testing.T) {
	env := newTestEnv(t)

	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityVeryHigh)
	ctype := testutil.SeedConnectionType(t, env.ctx, env.tx, "Mentor")
	if _, err := env.ctypeAssocRepo.Create(env.ctx, env.tx, []*types.RelationshipConnectionType{{
		RelationshipID:   rel.ID,
		ConnectionTypeID: ctype.ID,
		IsPrimary:        true,
	}}); err != nil {
		t.Fatalf("create assoc: %v", err)
	}

	if err := env.scoringSvc.RecalculateAllRatings(env.ctx); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	got, err := env.ctypeRepo.GetByName(env.ctx, env.tx, "Mentor")
	if err != nil {
		t.Fatalf("load ctype: %v", err)
	}
	// Very High base 2.0 times the 1.5 primary multiplier.
	if got.PriorityRating != 3.0 {
		t.Fatalf("rating: want=3.0 got=%v", got.PriorityRating)
	}
}

func TestRecalculateAllRatingsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityHigh)
	tag := testutil.SeedTag(t, env.ctx, env.tx, "golang")
	if _, err := env.tagAssocRepo.Create(env.ctx, env.tx, []*types.RelationshipTag{{
		RelationshipID: rel.ID,
		TagID:          tag.ID,
	}}); err != nil {
		t.Fatalf("create assoc: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := env.scoringSvc.RecalculateAllRatings(env.ctx); err != nil {
			t.Fatalf("recalculate pass %d: %v", i, err)
		}
	}

	got, err := env.tagRepo.GetByName(env.ctx, env.tx, "golang")
	if err != nil {
		t.Fatalf("load tag: %v", err)
	}
	if got.PriorityRating != 1.0 {
		t.Fatalf("rating after repeated runs: want=1.0 got=%v", got.PriorityRating)
	}
}

func TestRecalculateAllRatingsUnknownPriorityContributesNothing(t *testing.T) {
	env := newTestEnv(t)

	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", "Critical")
	tag := testutil.SeedTag(t, env.ctx, env.tx, "golang")
	if _, err := env.tagAssocRepo.Create(env.ctx, env.tx, []*types.RelationshipTag{{
		RelationshipID: rel.ID,
		TagID:          tag.ID,
		IsPrimary:      true,
	}}); err != nil {
		t.Fatalf("create assoc: %v", err)
	}

	if err := env.scoringSvc.RecalculateAllRatings(env.ctx); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	got, err := env.tagRepo.GetByName(env.ctx, env.tx, "golang")
	if err != nil {
		t.Fatalf("load tag: %v", err)
	}
	if got.PriorityRating != 0 {
		t.Fatalf("rating: want=0 got=%v", got.PriorityRating)
	}
}

func TestRecalculateAllRatingsResetsStaleScores(t *testing.T) {
	env := newTestEnv(t)

	tag := testutil.SeedTag(t, env.ctx, env.tx, "stale")
	if err := env.tagRepo.SetRatings(env.ctx, env.tx, map[uint]float64{tag.ID: 9.5}); err != nil {
		t.Fatalf("prime rating: %v", err)
	}

	if err := env.scoringSvc.RecalculateAllRatings(env.ctx); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	got, err := env.tagRepo.GetByName(env.ctx, env.tx, "stale")
	if err != nil {
		t.Fatalf("load tag: %v", err)
	}
	if got.PriorityRating != 0 {
		t.Fatalf("unreferenced tag rating: want=0 got=%v", got.PriorityRating)
	}
}

func TestEventImportanceSumsBaseScores(t *testing.T) {
	env := newTestEnv(t)

	participants := []types.Relationship{
		{Priority: types.PriorityHigh},
		{Priority: types.PriorityMedium},
	}
	if got := env.scoringSvc.EventImportance(participants); got != 1.25 {
		t.Fatalf("importance: want=1.25 got=%v", got)
	}
	if got := env.scoringSvc.EventImportance(nil); got != 0 {
		t.Fatalf("importance with no participants: want=0 got=%v", got)
	}
}

func TestRecalculateAllEventImportance(t *testing.T) {
	env := newTestEnv(t)

	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityVeryHigh)
	event := testutil.SeedEvent(t, env.ctx, env.tx, "Meetup", nil)
	if err := env.eventRepo.ReplaceParticipants(env.ctx, env.tx, event, []*types.Relationship{rel}); err != nil {
		t.Fatalf("add participant: %v", err)
	}

	if err := env.scoringSvc.RecalculateAllEventImportance(env.ctx); err != nil {
		t.Fatalf("recalculate: %v", err)
	}

	got, err := env.eventRepo.GetByID(env.ctx, env.tx, event.ID)
	if err != nil {
		t.Fatalf("load event: %v", err)
	}
	// No primary multiplier on event importance.
	if got.ImportanceScore != 2.0 {
		t.Fatalf("importance: want=2.0 got=%v", got.ImportanceScore)
	}
}
