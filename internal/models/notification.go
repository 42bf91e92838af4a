package models

import "time"

type Notification struct {
	BaseModel
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `gorm:"not null" json:"message"`
	Type      NotificationType `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	CreatedBy *string          `gorm:"type:uuid" json:"created_by,omitempty"`
	ActionURL string           `json:"action_url,omitempty"`

	Creator *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}

// UserNotification is one delivery of a Notification to one user.
type UserNotification struct {
	ID             string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NotificationID string     `gorm:"type:uuid;not null;index" json:"notification_id"`
	UserID         string     `gorm:"type:uuid;not null;index" json:"user_id"`
	IsRead         bool       `gorm:"not null;default:false" json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `gorm:"default:now()" json:"created_at"`

	Notification *Notification `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE" json:"-"`
	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
