package handlers

import (
	"net/http"

	"schoolhub_backend/internal/auth"
	"schoolhub_backend/internal/middleware"
	"schoolhub_backend/internal/services"
	"schoolhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		// The legacy frontend contract addresses the user via
		// user_id query/body params, so these stay public.
		notifications.GET("", h.ListForUser)
		notifications.GET("/unread", h.GetUnreadCount)
		notifications.PUT("/:notificationId", h.MarkRead)

		notifications.POST("/announce",
			middleware.AuthMiddleware(),
			middleware.RequireCapability(auth.CapNotifAnnounce),
			h.Announce)
	}
}

func (h *NotificationHandler) ListForUser(c *gin.Context) {
	userID := c.Query("user_id")
	limit := ParseQueryInt(c, "limit", services.DefaultNotificationLimit)

	db := h.GetDB(c)

	rows, err := h.notificationService.ListForUser(db, userID, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": rows,
	})
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.Query("user_id")

	db := h.GetDB(c)

	count, err := h.notificationService.UnreadCount(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"unread_count": count,
	})
}

// MarkRead also serves PUT /notifications/mark-all-read: the literal
// "mark-all-read" shares the wildcard slot with notification ids, so the
// route cannot be registered as its own static path.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID := c.Param("notificationId")

	if notificationID == "mark-all-read" {
		h.markAllRead(c)
		return
	}

	var req dto.MarkReadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.notificationService.MarkRead(db, notificationID, req.UserID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification marked as read",
	})
}

func (h *NotificationHandler) markAllRead(c *gin.Context) {
	var req dto.MarkAllReadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.notificationService.MarkAllRead(db, req.UserID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All notifications marked as read",
	})
}

func (h *NotificationHandler) Announce(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AnnounceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	notification, delivered, err := h.notificationService.Announce(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Announcement sent",
		"notification": notification,
		"delivered":    delivered,
	})
}
