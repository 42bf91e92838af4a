package dto

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Location    string    `json:"location" validate:"max=255"`
	EventType   string    `json:"event_type" validate:"max=100"`
	Color       string    `json:"color" validate:"omitempty,hexcolor"`
	IsPublic    *bool     `json:"is_public"`
}

// UpdateEventRequest is a partial update; nil fields are left untouched.
type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	EventType   *string    `json:"event_type" validate:"omitempty,max=100"`
	Color       *string    `json:"color" validate:"omitempty,hexcolor"`
	IsPublic    *bool      `json:"is_public"`
}
