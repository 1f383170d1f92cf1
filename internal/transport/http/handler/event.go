package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbook/internal/app"
	"eventbook/internal/transport/http/middleware"
	"eventbook/internal/transport/http/response"
)

type EventHandler struct {
	eventService *app.EventService
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type UpdateEventRequest struct {
	Title     string `json:"title" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Image     string `json:"image"`
}

func NewEventHandler(eventService *app.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title, date, startTime and endTime are required")
		return
	}

	event, err := h.eventService.Create(app.CreateEventInput{
		UserID:      userID,
		Title:       req.Title,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Image:       req.Image,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "title, date, startTime and endTime are required")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "event created",
		"event":   event,
	})
}

func (h *EventHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}

	events, err := h.eventService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}
	eventID, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "event not found")
		return
	}

	event, err := h.eventService.Get(eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEventNotFound):
			response.Error(c, http.StatusNotFound, "event not found")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}
	eventID, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "event not found")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title, date, startTime and endTime are required")
		return
	}

	err := h.eventService.Update(eventID, userID, app.UpdateEventInput{
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Image:     req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "title, date, startTime and endTime are required")
		case errors.Is(err, app.ErrEventNotFound):
			response.Error(c, http.StatusNotFound, "event not found")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	response.Message(c, http.StatusOK, "event updated")
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "event not found")
		return
	}

	if err := h.eventService.Delete(eventID); err != nil {
		switch {
		case errors.Is(err, app.ErrEventNotFound):
			response.Error(c, http.StatusNotFound, "event not found")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}
	response.Message(c, http.StatusOK, "event deleted")
}
