package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	// Optional profile fields
	AvatarURL        string     `json:"avatar_url,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Address          string     `json:"address,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`

	LastLogin *time.Time `json:"last_login,omitempty"`
}
