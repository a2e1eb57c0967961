package domain

import "github.com/google/uuid"

// Tag names are stored lowercase; the reconciler normalizes input before
// lookup so uniqueness is effectively case-insensitive.
type Tag struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"column:name;uniqueIndex;not null" json:"name"`
	PriorityRating float64 `gorm:"column:priority_rating;not null;default:0" json:"priority_rating"`
}

func (Tag) TableName() string { return "tags" }

type RelationshipTag struct {
	RelationshipID uuid.UUID `gorm:"type:uuid;primaryKey" json:"relationship_id"`
	TagID          uint      `gorm:"primaryKey" json:"tag_id"`
	IsPrimary      bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`

	Tag *Tag `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}

func (RelationshipTag) TableName() string { return "relationship_tags" }
