package services

import "schoolhub_backend/internal/email"

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	NotificationService NotificationService
	EventService        EventService
	DashboardService    DashboardService
	EmailService        email.Provider
}
