package handlers

import (
	"net/http"

	"schoolhub_backend/internal/auth"
	"schoolhub_backend/internal/middleware"
	"schoolhub_backend/internal/services"
	"schoolhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:eventId", h.Get)
	}

	writes := rg.Group("/events")
	writes.Use(middleware.AuthMiddleware(), middleware.RequireCapability(auth.CapEventsWrite))
	{
		writes.POST("", h.Create)
		writes.PUT("/:eventId", h.Update)
		writes.DELETE("/:eventId", h.Delete)
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	event, err := h.eventService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Event created successfully",
		"event":   event,
	})
}

func (h *EventHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	event, err := h.eventService.Get(db, c.Param("eventId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"event":   event,
	})
}

func (h *EventHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	db := h.GetDB(c)

	events, total, err := h.eventService.List(db, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
		"total":   total,
	})
}

func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	event, err := h.eventService.Update(db, c.Param("eventId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event updated successfully",
		"event":   event,
	})
}

func (h *EventHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.eventService.Delete(db, c.Param("eventId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event deleted successfully",
	})
}
