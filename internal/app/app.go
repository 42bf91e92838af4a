package app

import (
	"fmt"

	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/database"
	"schoolhub_backend/internal/email"
	"schoolhub_backend/internal/handlers"
	"schoolhub_backend/internal/logger"
	"schoolhub_backend/internal/middleware"
	"schoolhub_backend/internal/repositories"
	"schoolhub_backend/internal/routes"
	"schoolhub_backend/internal/services"
	"schoolhub_backend/internal/validator"
	"schoolhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	result, err := database.Initialize(gormDB, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database schema", "error", err)
	}
	if result.AlreadyInitialized {
		logger.Info("Database schema already initialized")
	} else {
		logger.Info("Database schema initialized", "tables", result.Tables, "superadmin", result.AdminEmail)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine. Tests call it directly against their
// own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(cfg)
		logger.Info("SMTP email provider configured", "host", cfg.Email.SMTPHost)
	} else {
		emailService = email.Noop{}
		logger.Warn("SMTP is not configured. Announcement emails are disabled.")
	}

	userRepo := repositories.NewUserRepository()
	eventRepo := repositories.NewEventRepository()
	notificationRepo := repositories.NewNotificationRepository()

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailService)
	recipientPolicy := services.NewPublicBroadcastPolicy(userRepo)
	eventService := services.NewEventService(eventRepo, notificationService, recipientPolicy)
	dashboardService := services.NewDashboardService(userRepo, eventRepo, notificationRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		NotificationService: notificationService,
		EventService:        eventService,
		DashboardService:    dashboardService,
		EmailService:        emailService,
	}
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		EventHandler:        handlers.NewEventHandler(baseHandler, services.EventService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, services.DashboardService),
		SystemHandler:       handlers.NewSystemHandler(baseHandler, cfg),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(db))
	ginRouter.HandleMethodNotAllowed = true
	ginRouter.NoMethod(apperrors.MethodNotAllowedHandler())
	ginRouter.NoRoute(apperrors.NotFoundHandler())
	return ginRouter
}
