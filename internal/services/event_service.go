package services

import (
	"fmt"

	"schoolhub_backend/internal/logger"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EventService interface {
	Create(db *gorm.DB, creatorID string, req *dto.CreateEventRequest) (*models.Event, error)
	Get(db *gorm.DB, id string) (*models.Event, error)
	List(db *gorm.DB, limit, offset int) ([]models.Event, int64, error)
	Update(db *gorm.DB, id string, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(db *gorm.DB, id string) error
}

type EventServiceImpl struct {
	eventRepo           repositories.EventRepository
	notificationService NotificationService
	recipientPolicy     RecipientPolicy
}

func NewEventService(
	eventRepo repositories.EventRepository,
	notificationService NotificationService,
	recipientPolicy RecipientPolicy,
) EventService {
	return &EventServiceImpl{
		eventRepo:           eventRepo,
		notificationService: notificationService,
		recipientPolicy:     recipientPolicy,
	}
}

func (s *EventServiceImpl) Create(db *gorm.DB, creatorID string, req *dto.CreateEventRequest) (*models.Event, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewBadRequestError("end_date must be on or after start_date")
	}

	color := req.Color
	if color == "" {
		color = models.DefaultEventColor
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		EventType:   req.EventType,
		Color:       color,
		CreatedBy:   &creatorID,
		IsPublic:    isPublic,
	}

	if err := s.eventRepo.Create(db, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The event exists at this point; a failed fan-out is logged, never
	// surfaced to the caller.
	s.notifyEventCreated(db, event)

	return event, nil
}

func (s *EventServiceImpl) notifyEventCreated(db *gorm.DB, event *models.Event) {
	recipients, err := s.recipientPolicy.Recipients(db, event)
	if err != nil {
		logger.Warn("Failed to resolve event notification recipients", "error", err, "event_id", event.ID)
		return
	}
	if len(recipients) == 0 {
		return
	}

	notification := &models.Notification{
		Title:     fmt.Sprintf("New event: %s", event.Title),
		Message:   fmt.Sprintf("%s starts on %s", event.Title, event.StartDate.Format("Jan 2, 2006 15:04")),
		Type:      models.NotificationTypeInfo,
		CreatedBy: event.CreatedBy,
		ActionURL: fmt.Sprintf("/events/%s", event.ID),
	}

	if err := s.notificationService.NotifyUsers(db, notification, recipients); err != nil {
		logger.Warn("Failed to fan out event notification", "error", err, "event_id", event.ID)
	}
}

func (s *EventServiceImpl) Get(db *gorm.DB, id string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.NewNotFoundError("events", "Event not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}

func (s *EventServiceImpl) List(db *gorm.DB, limit, offset int) ([]models.Event, int64, error) {
	events, total, err := s.eventRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return events, total, nil
}

func (s *EventServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.EventType != nil {
		fields["event_type"] = *req.EventType
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if len(fields) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	// When both dates move they must stay ordered; single-sided moves are
	// checked against the stored row.
	current, err := s.eventRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.NewNotFoundError("events", "Event not found")
		}
		return nil, apperrors.InternalError(err)
	}
	start := current.StartDate
	end := current.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if end.Before(start) {
		return nil, apperrors.NewBadRequestError("end_date must be on or after start_date")
	}

	event, err := s.eventRepo.Update(db, id, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.NewNotFoundError("events", "Event not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return event, nil
}

func (s *EventServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := s.eventRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.NewNotFoundError("events", "Event not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
