package services

import (
	"testing"

	"github.com/BennetC/Social-Tracker/internal/data/repos/testutil"
	types "github.com/BennetC/Social-Tracker/internal/domain"
	"github.com/BennetC/Social-Tracker/internal/pkg/errorsx"
)

func newTestReconciler(t *testing.T, env *testEnv) *associationReconciler {
	t.Helper()
	return newAssociationReconciler(
		testutil.Logger(t), env.cfg,
		env.ctypeRepo, env.ctypeAssocRepo,
		env.tagRepo, env.tagAssocRepo,
		env.platformRepo, env.socialRepo,
	)
}

func TestReconcileConnectionTypesRejectsEmptySelection(t *testing.T) {
	env := newTestEnv(t)
	r := newTestReconciler(t, env)
	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityMedium)

	err := r.reconcileConnectionTypes(env.ctx, env.tx, rel.ID, nil, "")
	if !errorsx.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReconcileConnectionTypesRejectsMalformedID(t *testing.T) {
	env := newTestEnv(t)
	r := newTestReconciler(t, env)
	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityMedium)

	err := r.reconcileConnectionTypes(env.ctx, env.tx, rel.ID, []string{"7", "abc"}, "7")
	if !errorsx.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReconcileTagsSoleTagBecomesPrimary(t *testing.T) {
	env := newTestEnv(t)
	r := newTestReconciler(t, env)
	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityMedium)

	if err := r.reconcileTags(env.ctx, env.tx, rel.ID, " Golang ", ""); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	assocs, err := env.tagAssocRepo.GetByRelationshipID(env.ctx, env.tx, rel.ID)
	if err != nil {
		t.Fatalf("load assocs: %v", err)
	}
	if len(assocs) != 1 {
		t.Fatalf("assocs: want=1 got=%d", len(assocs))
	}
	if assocs[0].Tag.Name != "golang" || !assocs[0].IsPrimary {
		t.Fatalf("sole tag should be lowercased and primary: %+v", assocs[0])
	}
}

func TestReconcileTagsReusesExistingRows(t *testing.T) {
	env := newTestEnv(t)
	r := newTestReconciler(t, env)
	existing := testutil.SeedTag(t, env.ctx, env.tx, "golang")
	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityMedium)

	if err := r.reconcileTags(env.ctx, env.tx, rel.ID, "GOLANG, rust", ""); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	assocs, err := env.tagAssocRepo.GetByRelationshipID(env.ctx, env.tx, rel.ID)
	if err != nil {
		t.Fatalf("load assocs: %v", err)
	}
	if len(assocs) != 2 {
		t.Fatalf("assocs: want=2 got=%d", len(assocs))
	}
	for _, assoc := range assocs {
		if assoc.Tag.Name == "golang" && assoc.TagID != existing.ID {
			t.Fatalf("existing tag row should be reused: want id=%d got=%d", existing.ID, assoc.TagID)
		}
	}
}

func TestReconcileSocialMediaIndependentCursors(t *testing.T) {
	env := newTestEnv(t)
	r := newTestReconciler(t, env)
	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityMedium)
	twitter := testutil.SeedPlatform(t, env.ctx, env.tx, "Twitter", true, false)
	linkedin := testutil.SeedPlatform(t, env.ctx, env.tx, "LinkedIn", false, true)

	// One handle and one link: the handle goes to Twitter, the link to
	// LinkedIn, even though they share no slot index.
	if err := r.reconcileSocialMedia(env.ctx, env.tx, rel.ID, SocialMediaInput{
		Platforms:    []string{"Twitter", "LinkedIn"},
		Handles:      []string{"@ada"},
		Links:        []string{"https://linkedin.com/in/ada"},
		PrimarySlots: []string{"2"},
	}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	accounts, err := env.socialRepo.GetByRelationshipID(env.ctx, env.tx, rel.ID)
	if err != nil {
		t.Fatalf("load accounts: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("accounts: want=2 got=%d", len(accounts))
	}
	byPlatform := map[uint]*types.SocialMedia{}
	for _, account := range accounts {
		byPlatform[account.PlatformID] = account
	}
	tw := byPlatform[twitter.ID]
	if tw == nil || tw.Handle == nil || *tw.Handle != "@ada" {
		t.Fatalf("twitter handle: %+v", tw)
	}
	li := byPlatform[linkedin.ID]
	if li == nil || li.ProfileLink == nil || *li.ProfileLink != "https://linkedin.com/in/ada" {
		t.Fatalf("linkedin link: %+v", li)
	}
	if tw.IsPrimary || !li.IsPrimary {
		t.Fatalf("primary flag should land on slot 2: twitter=%v linkedin=%v", tw.IsPrimary, li.IsPrimary)
	}
}

func TestReconcileSocialMediaSkipsMalformedSlots(t *testing.T) {
	env := newTestEnv(t)
	r := newTestReconciler(t, env)
	rel := testutil.SeedRelationship(t, env.ctx, env.tx, "Ada", types.PriorityMedium)
	testutil.SeedPlatform(t, env.ctx, env.tx, "Twitter", true, false)

	// Empty name, unknown platform, and an Other slot with an exhausted
	// custom-name list all skip silently; the valid slot still lands.
	if err := r.reconcileSocialMedia(env.ctx, env.tx, rel.ID, SocialMediaInput{
		Platforms: []string{"", "Myspace", OtherPlatform, "Twitter"},
		Handles:   []string{"@ada"},
	}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	accounts, err := env.socialRepo.GetByRelationshipID(env.ctx, env.tx, rel.ID)
	if err != nil {
		t.Fatalf("load accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("accounts: want=1 got=%d", len(accounts))
	}
	if accounts[0].Handle == nil || *accounts[0].Handle != "@ada" {
		t.Fatalf("surviving slot: %+v", accounts[0])
	}
}

func TestSynthesizeLink(t *testing.T) {
	env := newTestEnv(t)
	r := newTestReconciler(t, env)

	cases := []struct {
		platform string
		handle   string
		want     string
	}{
		{"Twitter", "@jdoe", "https://twitter.com/jdoe"},
		{"Twitter", "jdoe", "https://twitter.com/jdoe"},
		{"Email", "a@b.co", "mailto:a@b.co"},
		{"TikTok", "@dance", "https://www.tiktok.com/@dance"},
		{"LinkedIn", "jdoe", ""},
	}
	for _, tc := range cases {
		if got := r.synthesizeLink(tc.platform, tc.handle); got != tc.want {
			t.Fatalf("%s/%s: want=%q got=%q", tc.platform, tc.handle, tc.want, got)
		}
	}
}
