package models

import "time"

// DefaultEventColor is used when a client does not pick one.
const DefaultEventColor = "#3b82f6"

type Event struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `gorm:"not null;index:idx_events_dates" json:"start_date"`
	EndDate     time.Time `gorm:"not null;index:idx_events_dates" json:"end_date"`
	Location    string    `json:"location,omitempty"`
	EventType   string    `json:"event_type,omitempty"`
	Color       string    `gorm:"default:'#3b82f6'" json:"color"`
	CreatedBy   *string   `gorm:"type:uuid" json:"created_by,omitempty"`
	IsPublic    bool      `gorm:"default:true" json:"is_public"`

	Creator *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}
