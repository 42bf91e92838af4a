package dto

import (
	"time"

	"schoolhub_backend/internal/models"
)

// UpdateProfileRequest is a partial profile update; nil fields stay as-is.
type UpdateProfileRequest struct {
	Name             *string    `json:"name" validate:"omitempty,max=255"`
	AvatarURL        *string    `json:"avatar_url" validate:"omitempty,url"`
	Phone            *string    `json:"phone" validate:"omitempty,max=50"`
	Address          *string    `json:"address"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	EmergencyContact *string    `json:"emergency_contact"`
}

type UpdateStatusRequest struct {
	Status models.UserStatus `json:"status" validate:"required,oneof=active inactive suspended"`
}
