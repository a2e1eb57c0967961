package catalog

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/BennetC/Social-Tracker/internal/data/repos/testutil"
	types "github.com/BennetC/Social-Tracker/internal/domain"
)

func TestPlatformGetByNameMiss(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewPlatformRepo(tx, testutil.Logger(t))

	got, err := repo.GetByName(ctx, tx, "Nope")
	if err != nil || got != nil {
		t.Fatalf("miss: want nil,nil got %v,%v", got, err)
	}
}

func TestPlatformRatingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewPlatformRepo(tx, testutil.Logger(t))

	a := testutil.SeedPlatform(t, ctx, tx, "Alpha", true, false)
	b := testutil.SeedPlatform(t, ctx, tx, "Beta", true, false)

	if err := repo.SetRatings(ctx, tx, map[uint]float64{a.ID: 1.5, b.ID: 3.0}); err != nil {
		t.Fatalf("set ratings: %v", err)
	}

	byRating, err := repo.ListByRating(ctx, tx)
	if err != nil {
		t.Fatalf("list by rating: %v", err)
	}
	if len(byRating) != 2 || byRating[0].Name != "Beta" {
		t.Fatalf("rating order: %+v", byRating)
	}

	if err := repo.ZeroAllRatings(ctx, tx); err != nil {
		t.Fatalf("zero: %v", err)
	}
	zeroed, err := repo.GetByName(ctx, tx, "Beta")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if zeroed.PriorityRating != 0 {
		t.Fatalf("rating after zero: want=0 got=%v", zeroed.PriorityRating)
	}
}

func TestPlatformUpdateRules(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewPlatformRepo(tx, testutil.Logger(t))

	p := testutil.SeedPlatform(t, ctx, tx, "Alpha", true, false)
	if err := repo.UpdateRules(ctx, tx, p.ID, false, true); err != nil {
		t.Fatalf("update rules: %v", err)
	}
	got, err := repo.GetByName(ctx, tx, "Alpha")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RequiresHandle || !got.RequiresLink {
		t.Fatalf("rules not updated: handle=%v link=%v", got.RequiresHandle, got.RequiresLink)
	}
}

func TestConnectionTypeDuplicateName(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewConnectionTypeRepo(tx, testutil.Logger(t))

	if _, err := repo.Create(ctx, tx, &types.ConnectionType{Name: "Peer"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repo.Create(ctx, tx, &types.ConnectionType{Name: "Peer"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestConnectionTypeGetByIDs(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewConnectionTypeRepo(tx, testutil.Logger(t))

	peer := testutil.SeedConnectionType(t, ctx, tx, "Peer")
	mentor := testutil.SeedConnectionType(t, ctx, tx, "Mentor")

	got, err := repo.GetByIDs(ctx, tx, []uint{peer.ID, mentor.ID})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows", len(got))
	}

	empty, err := repo.GetByIDs(ctx, tx, nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty ids: want no rows, got %v,%v", empty, err)
	}
}

func TestTagTopByRating(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewTagRepo(tx, testutil.Logger(t))

	older := testutil.SeedTag(t, ctx, tx, "older")
	newer := testutil.SeedTag(t, ctx, tx, "newer")
	if err := repo.SetRatings(ctx, tx, map[uint]float64{older.ID: 5.0, newer.ID: 1.0}); err != nil {
		t.Fatalf("set ratings: %v", err)
	}

	top, err := repo.TopByRating(ctx, tx, 10)
	if err != nil {
		t.Fatalf("top by rating: %v", err)
	}
	if len(top) != 2 || top[0].Name != "older" || top[1].Name != "newer" {
		t.Fatalf("top order: %+v", top)
	}

	limited, err := repo.TopByRating(ctx, tx, 1)
	if err != nil {
		t.Fatalf("top by rating limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Name != "older" {
		t.Fatalf("limited order: %+v", limited)
	}
}
