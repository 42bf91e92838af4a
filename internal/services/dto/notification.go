package dto

import "schoolhub_backend/internal/models"

// AnnounceRequest creates a notification and fans it out. Empty UserIDs
// means every active user.
type AnnounceRequest struct {
	Title     string                  `json:"title" validate:"required,max=255"`
	Message   string                  `json:"message" validate:"required"`
	Type      models.NotificationType `json:"type" validate:"omitempty,oneof=info warning error success"`
	ActionURL string                  `json:"action_url" validate:"omitempty,url"`
	UserIDs   []string                `json:"user_ids"`
}

// MarkReadRequest identifies whose delivery row to flip. The user id travels
// in the body to preserve the frontend contract.
type MarkReadRequest struct {
	UserID string `json:"user_id"`
}

type MarkAllReadRequest struct {
	UserID string `json:"user_id"`
}
