package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Relationship struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string     `gorm:"column:name;not null" json:"name"`
	Goal              string     `gorm:"column:goal" json:"goal"`
	ExecutionStrategy string     `gorm:"column:execution_strategy" json:"execution_strategy"`
	Notes             string     `gorm:"column:notes" json:"notes"`
	Priority          string     `gorm:"column:priority;not null;default:'Medium'" json:"priority"`
	InteractionLevel  string     `gorm:"column:interaction_level;not null;default:'Not Contacted'" json:"interaction_level"`
	FollowUpFrequency string     `gorm:"column:follow_up_frequency" json:"follow_up_frequency"`
	NextFollowUpTopic string     `gorm:"column:next_follow_up_topic" json:"next_follow_up_topic"`
	LastContacted     *time.Time `gorm:"column:last_contacted" json:"last_contacted,omitempty"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null" json:"updated_at"`

	ConnectionTypeAssociations []RelationshipConnectionType `gorm:"foreignKey:RelationshipID" json:"connection_type_associations,omitempty"`
	TagAssociations            []RelationshipTag            `gorm:"foreignKey:RelationshipID" json:"tag_associations,omitempty"`
	SocialMedia                []SocialMedia                `gorm:"foreignKey:RelationshipID" json:"social_media,omitempty"`
	Interactions               []InteractionHistory         `gorm:"foreignKey:RelationshipID" json:"interactions,omitempty"`
	FollowUps                  []FollowUp                   `gorm:"foreignKey:RelationshipID" json:"follow_ups,omitempty"`
	Events                     []Event                      `gorm:"many2many:event_participants" json:"events,omitempty"`
}

func (Relationship) TableName() string { return "relationships" }

func (r *Relationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// PrimaryConnectionType returns the name of the primary connection-type
// association, falling back to the first association, then "N/A". Requires
// the associations and their connection types to be preloaded.
func (r *Relationship) PrimaryConnectionType() string {
	for _, assoc := range r.ConnectionTypeAssociations {
		if assoc.IsPrimary && assoc.ConnectionType != nil {
			return assoc.ConnectionType.Name
		}
	}
	if len(r.ConnectionTypeAssociations) > 0 && r.ConnectionTypeAssociations[0].ConnectionType != nil {
		return r.ConnectionTypeAssociations[0].ConnectionType.Name
	}
	return "N/A"
}

// PendingFollowUps filters preloaded follow-ups down to pending ones,
// ordered by due date.
func (r *Relationship) PendingFollowUps() []FollowUp {
	pending := make([]FollowUp, 0, len(r.FollowUps))
	for _, f := range r.FollowUps {
		if f.Status == FollowUpStatusPending {
			pending = append(pending, f)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})
	return pending
}
