package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string     `gorm:"column:title;not null" json:"title"`
	Details         string     `gorm:"column:details" json:"details"`
	Priority        string     `gorm:"column:priority;not null;default:'Medium'" json:"priority"`
	StartDate       *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate         *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	IsPotential     bool       `gorm:"column:is_potential;not null;default:false" json:"is_potential"`
	Pros            string     `gorm:"column:pros" json:"pros"`
	Cons            string     `gorm:"column:cons" json:"cons"`
	Outcome         string     `gorm:"column:outcome" json:"outcome"`
	Learnings       string     `gorm:"column:learnings" json:"learnings"`
	ImportanceScore float64    `gorm:"column:importance_score;not null;default:0" json:"importance_score"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`

	Participants []Relationship `gorm:"many2many:event_participants" json:"participants,omitempty"`
}

func (Event) TableName() string { return "events" }

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsPast reports whether the event already happened: the end date has
// passed, or there is no end date and the start date has passed.
func (e *Event) IsPast(now time.Time) bool {
	if e.EndDate != nil {
		return e.EndDate.Before(now)
	}
	return e.StartDate != nil && e.StartDate.Before(now)
}
