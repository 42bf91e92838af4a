package handlers

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	NotificationHandler *NotificationHandler
	EventHandler        *EventHandler
	DashboardHandler    *DashboardHandler
	SystemHandler       *SystemHandler
}
