package services

import (
	"schoolhub_backend/internal/logger"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/services/dto"

	"gorm.io/gorm"
)

// DashboardService computes role-keyed stat cards. It never returns an
// error: the dashboard always renders, so store failures degrade to a
// fallback set instead of propagating.
type DashboardService interface {
	GetStats(db *gorm.DB, userID string, role models.UserRole) []dto.StatCard
}

type DashboardServiceImpl struct {
	userRepo         repositories.UserRepository
	eventRepo        repositories.EventRepository
	notificationRepo repositories.NotificationRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	notificationRepo repositories.NotificationRepository,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *DashboardServiceImpl) GetStats(db *gorm.DB, userID string, role models.UserRole) []dto.StatCard {
	var stats []dto.StatCard
	var err error

	switch role {
	case models.UserRoleAdmin, models.UserRoleSuperAdmin, models.UserRolePrincipal, models.UserRoleSchoolAdmin:
		stats, err = s.adminStats(db)
	case models.UserRoleTeacher:
		stats, err = s.teacherStats(db, userID)
	case models.UserRoleStudent, models.UserRoleParent:
		stats, err = s.studentStats(db, userID)
	default:
		stats, err = s.defaultStats(db, userID)
	}

	if err != nil {
		logger.Warn("Dashboard stats query failed, serving fallback", "error", err, "role", role)
		return fallbackStats(role)
	}
	return stats
}

func (s *DashboardServiceImpl) adminStats(db *gorm.DB) ([]dto.StatCard, error) {
	totalUsers, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, err
	}
	students, err := s.userRepo.CountByRole(db, models.UserRoleStudent)
	if err != nil {
		return nil, err
	}
	teachers, err := s.userRepo.CountByRole(db, models.UserRoleTeacher)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.eventRepo.CountUpcoming(db)
	if err != nil {
		return nil, err
	}

	return []dto.StatCard{
		{Metric: "total_users", Value: totalUsers, Label: "Total Users", Description: "All accounts in the system"},
		{Metric: "students", Value: students, Label: "Students", Description: "Enrolled students"},
		{Metric: "teachers", Value: teachers, Label: "Teachers", Description: "Teaching staff"},
		{Metric: "upcoming_events", Value: upcoming, Label: "Upcoming Events", Description: "Events starting today or later"},
	}, nil
}

func (s *DashboardServiceImpl) teacherStats(db *gorm.DB, userID string) ([]dto.StatCard, error) {
	myEvents, err := s.eventRepo.CountCreatedBy(db, userID)
	if err != nil {
		return nil, err
	}
	students, err := s.userRepo.CountByRole(db, models.UserRoleStudent)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.UnreadCount(db, userID)
	if err != nil {
		return nil, err
	}

	return []dto.StatCard{
		{Metric: "my_events", Value: myEvents, Label: "My Events", Description: "Events you created"},
		{Metric: "students", Value: students, Label: "Students", Description: "Enrolled students"},
		{Metric: "unread_notifications", Value: unread, Label: "Unread", Description: "Unread notifications"},
	}, nil
}

func (s *DashboardServiceImpl) studentStats(db *gorm.DB, userID string) ([]dto.StatCard, error) {
	upcoming, err := s.eventRepo.CountUpcoming(db)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.UnreadCount(db, userID)
	if err != nil {
		return nil, err
	}

	return []dto.StatCard{
		{Metric: "upcoming_events", Value: upcoming, Label: "Upcoming Events", Description: "Events on the school calendar"},
		{Metric: "unread_notifications", Value: unread, Label: "Unread", Description: "Unread notifications"},
	}, nil
}

func (s *DashboardServiceImpl) defaultStats(db *gorm.DB, userID string) ([]dto.StatCard, error) {
	upcoming, err := s.eventRepo.CountUpcoming(db)
	if err != nil {
		return nil, err
	}

	return []dto.StatCard{
		{Metric: "upcoming_events", Value: upcoming, Label: "Upcoming Events", Description: "Events on the school calendar"},
	}, nil
}

// fallbackStats is what the dashboard shows when the store is unavailable.
func fallbackStats(role models.UserRole) []dto.StatCard {
	return []dto.StatCard{
		{Metric: "unavailable", Value: 0, Label: "Stats unavailable", Description: "Data is temporarily unavailable"},
	}
}
