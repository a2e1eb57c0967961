// Package domain holds the relational schema for the relationship tracker.
// Priority ratings and importance scores on these models are derived values:
// the scoring service owns them and rewrites them wholesale.
package domain

const (
	PriorityVeryHigh = "Very High"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
	PriorityVeryLow  = "Very Low"
)

const (
	InteractionLevelNew          = "New"
	InteractionLevelActive       = "Active"
	InteractionLevelDormant      = "Dormant"
	InteractionLevelNotContacted = "Not Contacted"
)

const (
	FollowUpStatusPending   = "pending"
	FollowUpStatusCompleted = "completed"
)

var InteractionTypes = []string{"comment", "DM", "email", "help", "follow-up", "meeting", "call"}

var priorityRanks = map[string]int{
	PriorityVeryHigh: 5,
	PriorityHigh:     4,
	PriorityMedium:   3,
	PriorityLow:      2,
	PriorityVeryLow:  1,
}

// PriorityRank orders priority levels for dashboard sorting. Unrecognized
// levels rank below Very Low.
func PriorityRank(priority string) int {
	return priorityRanks[priority]
}
