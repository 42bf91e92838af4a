package repositories

import (
	"errors"
	"time"

	"schoolhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Create(db *gorm.DB, event *models.Event) error
	FindByID(db *gorm.DB, id string) (*models.Event, error)
	FindAll(db *gorm.DB, limit, offset int) ([]models.Event, int64, error)
	Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Event, error)
	Delete(db *gorm.DB, id string) error
	CountAll(db *gorm.DB) (int64, error)
	CountUpcoming(db *gorm.DB) (int64, error)
	CountCreatedBy(db *gorm.DB, userID string) (int64, error)
}

type EventRepositoryImpl struct{}

func NewEventRepository() EventRepository {
	return &EventRepositoryImpl{}
}

func (r *EventRepositoryImpl) Create(db *gorm.DB, event *models.Event) error {
	// The insert returns the generated row; no follow-up read.
	return db.Create(event).Error
}

func (r *EventRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	err := db.First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	if err := db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("start_date ASC").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *EventRepositoryImpl) Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Event, error) {
	fields["updated_at"] = time.Now()

	result := db.Model(&models.Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEventNotFound
	}
	return r.FindByID(db, id)
}

func (r *EventRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Event{}).Count(&count).Error
	return count, err
}

func (r *EventRepositoryImpl) CountUpcoming(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Event{}).Where("start_date >= ?", time.Now()).Count(&count).Error
	return count, err
}

func (r *EventRepositoryImpl) CountCreatedBy(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Event{}).Where("created_by = ?", userID).Count(&count).Error
	return count, err
}
