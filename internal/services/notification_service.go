package services

import (
	"fmt"

	"schoolhub_backend/internal/email"
	"schoolhub_backend/internal/logger"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	DefaultNotificationLimit = 50
	maxNotificationLimit     = 100
)

type NotificationService interface {
	ListForUser(db *gorm.DB, userID string, limit int) ([]repositories.NotificationWithState, error)
	UnreadCount(db *gorm.DB, userID string) (int64, error)
	MarkRead(db *gorm.DB, notificationID, userID string) error
	MarkAllRead(db *gorm.DB, userID string) error
	Announce(db *gorm.DB, createdBy string, req *dto.AnnounceRequest) (*models.Notification, int, error)
	NotifyUsers(db *gorm.DB, notification *models.Notification, userIDs []string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailProvider:    emailProvider,
	}
}

func (s *NotificationServiceImpl) ListForUser(db *gorm.DB, userID string, limit int) ([]repositories.NotificationWithState, error) {
	if userID == "" {
		return nil, apperrors.NewBadRequestError("user_id is required")
	}
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	rows, err := s.notificationRepo.FindForUser(db, userID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}

func (s *NotificationServiceImpl) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	if userID == "" {
		return 0, apperrors.NewBadRequestError("user_id is required")
	}

	count, err := s.notificationRepo.UnreadCount(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, notificationID, userID string) error {
	if userID == "" {
		return apperrors.NewBadRequestError("user_id is required")
	}

	err := s.notificationRepo.MarkRead(db, notificationID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notifications", "Notification not found or does not belong to user")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, userID string) error {
	if userID == "" {
		return apperrors.NewBadRequestError("user_id is required")
	}

	if err := s.notificationRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Announce creates a notification and fans it out to the requested users, or
// to every active user when none are named. Returns the notification and the
// number of deliveries.
func (s *NotificationServiceImpl) Announce(db *gorm.DB, createdBy string, req *dto.AnnounceRequest) (*models.Notification, int, error) {
	notifType := req.Type
	if notifType == "" {
		notifType = models.NotificationTypeInfo
	}

	notification := &models.Notification{
		Title:     req.Title,
		Message:   req.Message,
		Type:      notifType,
		ActionURL: req.ActionURL,
	}
	if createdBy != "" {
		notification.CreatedBy = &createdBy
	}

	recipients := req.UserIDs
	if len(recipients) == 0 {
		ids, err := s.userRepo.FindActiveIDs(db)
		if err != nil {
			return nil, 0, apperrors.InternalError(err)
		}
		recipients = ids
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	if err := s.notificationRepo.FanOut(db, notification.ID, recipients); err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	s.sendEmails(db, notification, recipients)

	return notification, len(recipients), nil
}

// NotifyUsers fans an already-built notification out to specific users. Used
// by the event side effect.
func (s *NotificationServiceImpl) NotifyUsers(db *gorm.DB, notification *models.Notification, userIDs []string) error {
	if err := s.notificationRepo.Create(db, notification); err != nil {
		return err
	}
	return s.notificationRepo.FanOut(db, notification.ID, userIDs)
}

// sendEmails mirrors an announcement to the recipients' inboxes when SMTP is
// configured. Delivery failures are logged only.
func (s *NotificationServiceImpl) sendEmails(db *gorm.DB, notification *models.Notification, recipients []string) {
	if s.emailProvider == nil {
		return
	}
	if _, ok := s.emailProvider.(email.Noop); ok {
		return
	}

	addresses, err := s.userRepo.FindEmailsByIDs(db, recipients)
	if err != nil {
		logger.Warn("Failed to resolve announcement recipient emails", "error", err)
		return
	}
	if len(addresses) == 0 {
		return
	}

	body := fmt.Sprintf("<p>%s</p>", notification.Message)
	if err := s.emailProvider.Send(addresses, notification.Title, body); err != nil {
		logger.Warn("Failed to send announcement email", "error", err, "recipients", len(addresses))
	}
}
