package domain

import (
	"testing"
	"time"
)

func TestPriorityRank(t *testing.T) {
	cases := []struct {
		priority string
		want     int
	}{
		{PriorityVeryHigh, 5},
		{PriorityHigh, 4},
		{PriorityMedium, 3},
		{PriorityLow, 2},
		{PriorityVeryLow, 1},
		{"Critical", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := PriorityRank(tc.priority); got != tc.want {
			t.Fatalf("PriorityRank(%q): want=%d got=%d", tc.priority, tc.want, got)
		}
	}
}

func TestPrimaryConnectionTypeFallbacks(t *testing.T) {
	peer := &ConnectionType{Name: "Peer"}
	mentor := &ConnectionType{Name: "Mentor Potential"}

	r := &Relationship{}
	if got := r.PrimaryConnectionType(); got != "N/A" {
		t.Fatalf("no associations: want=N/A got=%q", got)
	}

	r.ConnectionTypeAssociations = []RelationshipConnectionType{
		{ConnectionType: peer},
		{ConnectionType: mentor, IsPrimary: true},
	}
	if got := r.PrimaryConnectionType(); got != "Mentor Potential" {
		t.Fatalf("primary flagged: want=Mentor Potential got=%q", got)
	}

	r.ConnectionTypeAssociations[1].IsPrimary = false
	if got := r.PrimaryConnectionType(); got != "Peer" {
		t.Fatalf("no primary flag falls back to first: want=Peer got=%q", got)
	}
}

func TestPendingFollowUpsFiltersAndSorts(t *testing.T) {
	now := time.Now().UTC()
	r := &Relationship{FollowUps: []FollowUp{
		{Topic: "later", Status: FollowUpStatusPending, DueDate: now.Add(48 * time.Hour)},
		{Topic: "done", Status: FollowUpStatusCompleted, DueDate: now},
		{Topic: "sooner", Status: FollowUpStatusPending, DueDate: now.Add(time.Hour)},
	}}

	pending := r.PendingFollowUps()
	if len(pending) != 2 {
		t.Fatalf("pending count: want=2 got=%d", len(pending))
	}
	if pending[0].Topic != "sooner" || pending[1].Topic != "later" {
		t.Fatalf("pending order: %q, %q", pending[0].Topic, pending[1].Topic)
	}
}

func TestEventIsPast(t *testing.T) {
	now := time.Now().UTC()
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	cases := []struct {
		name  string
		event Event
		want  bool
	}{
		{"no dates", Event{}, false},
		{"start in past", Event{StartDate: &before}, true},
		{"start in future", Event{StartDate: &after}, false},
		{"end date wins", Event{StartDate: &before, EndDate: &after}, false},
		{"ended", Event{StartDate: &before, EndDate: &before}, true},
	}
	for _, tc := range cases {
		if got := tc.event.IsPast(now); got != tc.want {
			t.Fatalf("%s: want=%v got=%v", tc.name, tc.want, got)
		}
	}
}
