package domain

import "github.com/google/uuid"

type ConnectionType struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"column:name;uniqueIndex;not null" json:"name"`
	PriorityRating float64 `gorm:"column:priority_rating;not null;default:0" json:"priority_rating"`
}

func (ConnectionType) TableName() string { return "connection_types" }

type RelationshipConnectionType struct {
	RelationshipID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"relationship_id"`
	ConnectionTypeID uint      `gorm:"primaryKey" json:"connection_type_id"`
	IsPrimary        bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`

	ConnectionType *ConnectionType `gorm:"foreignKey:ConnectionTypeID" json:"connection_type,omitempty"`
}

func (RelationshipConnectionType) TableName() string { return "relationship_connection_types" }
