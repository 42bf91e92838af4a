package dto

import "schoolhub_backend/internal/models"

// LoginRequest carries raw credentials. Presence and format are checked in
// the service so the API answers with the exact legacy messages instead of
// field-map validation errors.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginResponse returns the authenticated user plus a signed access token.
// The bare user object is kept for clients of the pre-token contract.
type LoginResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}
