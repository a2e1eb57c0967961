package domain

import (
	"time"

	"github.com/google/uuid"
)

type FollowUp struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	RelationshipID uuid.UUID  `gorm:"type:uuid;not null;index" json:"relationship_id"`
	Topic          string     `gorm:"column:topic;not null" json:"topic"`
	DueDate        time.Time  `gorm:"column:due_date;not null" json:"due_date"`
	Status         string     `gorm:"column:status;not null;default:'pending'" json:"status"`
	CompletedAt    *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
}

func (FollowUp) TableName() string { return "follow_ups" }
