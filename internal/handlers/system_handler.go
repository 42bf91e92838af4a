package handlers

import (
	"net/http"

	"schoolhub_backend/internal/config"
	"schoolhub_backend/internal/database"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the schema-init and health endpoints, which live at
// the engine root rather than under /api/v1.
type SystemHandler struct {
	*BaseHandler
	cfg *config.Config
}

func NewSystemHandler(base *BaseHandler, cfg *config.Config) *SystemHandler {
	return &SystemHandler{
		BaseHandler: base,
		cfg:         cfg,
	}
}

func (h *SystemHandler) RegisterRoutes(r *gin.Engine) {
	// init-db accepts POST only; other verbs get 405 via the engine's
	// NoMethod handler.
	r.POST("/init-db", h.InitDB)
	r.GET("/health", h.Health)
}

func (h *SystemHandler) InitDB(c *gin.Context) {
	db := h.GetDB(c)

	result, err := database.Initialize(db, h.cfg)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.AlreadyInitialized {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database already initialized",
			"tables":  result.Tables,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Database initialized successfully",
		"tables":     result.Tables,
		"superadmin": result.AdminEmail,
	})
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
	})
}
