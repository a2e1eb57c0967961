package domain

import (
	"time"

	"github.com/google/uuid"
)

type SocialMedia struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RelationshipID uuid.UUID `gorm:"type:uuid;not null;index" json:"relationship_id"`
	PlatformID     uint      `gorm:"not null;index" json:"platform_id"`
	Handle         *string   `gorm:"column:handle" json:"handle,omitempty"`
	ProfileLink    *string   `gorm:"column:profile_link" json:"profile_link,omitempty"`
	IsPrimary      bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`

	Platform *Platform `gorm:"foreignKey:PlatformID" json:"platform,omitempty"`
}

func (SocialMedia) TableName() string { return "social_media" }
