package model

import (
	"time"

	"gorm.io/datatypes"
)

// EventModel is the GORM-specific struct for the append-only 'events' table.
type EventModel struct {
	ID        uint           `gorm:"primaryKey"`
	Type      string         `gorm:"type:varchar(255);not null;index:idx_events_type;index:idx_events_name_type,priority:2"`
	Name      string         `gorm:"type:varchar(255);not null;index:idx_events_name_type,priority:1"`
	Payload   datatypes.JSON `gorm:"type:json;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
