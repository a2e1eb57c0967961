package domain

import (
	"time"

	"github.com/google/uuid"
)

type InteractionHistory struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RelationshipID uuid.UUID `gorm:"type:uuid;not null;index" json:"relationship_id"`
	Date           time.Time `gorm:"column:date;not null" json:"date"`
	Title          string    `gorm:"column:title;not null" json:"title"`
	Type           string    `gorm:"column:type;not null" json:"type"`
	Platform       string    `gorm:"column:platform" json:"platform"`
	Details        string    `gorm:"column:details" json:"details"`

	Relationship *Relationship `gorm:"foreignKey:RelationshipID" json:"relationship,omitempty"`
}

func (InteractionHistory) TableName() string { return "interaction_history" }
