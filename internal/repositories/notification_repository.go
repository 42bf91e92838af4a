package repositories

import (
	"errors"
	"time"

	"schoolhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationWithState is one row of a user's notification list: the
// notification itself plus that user's delivery state from the join table.
type NotificationWithState struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      models.NotificationType `json:"type"`
	CreatedBy *string                 `json:"created_by,omitempty"`
	ActionURL string                  `json:"action_url,omitempty"`
	IsRead    bool                    `json:"is_read"`
	ReadAt    *time.Time              `json:"read_at,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FanOut(db *gorm.DB, notificationID string, userIDs []string) error
	FindForUser(db *gorm.DB, userID string, limit int) ([]NotificationWithState, error)
	UnreadCount(db *gorm.DB, userID string) (int64, error)
	MarkRead(db *gorm.DB, notificationID, userID string) error
	MarkAllRead(db *gorm.DB, userID string) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

// FanOut creates one delivery row per recipient.
func (r *NotificationRepositoryImpl) FanOut(db *gorm.DB, notificationID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]models.UserNotification, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, models.UserNotification{
			NotificationID: notificationID,
			UserID:         userID,
		})
	}
	return db.Create(&rows).Error
}

func (r *NotificationRepositoryImpl) FindForUser(db *gorm.DB, userID string, limit int) ([]NotificationWithState, error) {
	var rows []NotificationWithState
	err := db.Table("user_notifications AS un").
		Select("n.id, n.title, n.message, n.type, n.created_by, n.action_url, un.is_read, un.read_at, n.created_at").
		Joins("JOIN notifications AS n ON n.id = un.notification_id").
		Where("un.user_id = ?", userID).
		Order("n.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *NotificationRepositoryImpl) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.UserNotification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flips the delivery row for this (notification, user) pair.
// Re-reading an already-read row is a no-op update, not an error; a missing
// pair (wrong user or unknown id) is ErrNotificationNotFound.
func (r *NotificationRepositoryImpl) MarkRead(db *gorm.DB, notificationID, userID string) error {
	result := db.Model(&models.UserNotification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllRead(db *gorm.DB, userID string) error {
	// Zero affected rows is fine: the user simply had nothing unread.
	return db.Model(&models.UserNotification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}
