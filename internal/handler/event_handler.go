package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"event-calendar-api/internal/model"
	"event-calendar-api/internal/service"
	apperrors "event-calendar-api/pkg/app_errors"
	"event-calendar-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const chosenDateLayout = "2006-01-02"

type EventHandler struct {
	service service.EventService
	timeout time.Duration
}

// NewEventHandler wraps service with the HTTP surface. timeout bounds each
// store-backed operation; zero means no per-request deadline.
func NewEventHandler(service service.EventService, timeout time.Duration) *EventHandler {
	return &EventHandler{service: service, timeout: timeout}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("create-event", h.CreateEvent)
		router.GET("recent-events", h.RecentEvents)
		router.GET("day-events", h.DayEvents)
		router.GET("month-events", h.MonthEvents)
	}
}

type CreateEventRequest struct {
	EventName    string     `json:"event_name" binding:"required"`
	EventType    string     `json:"event_type" binding:"required"`
	EventDetails string     `json:"event_details" binding:"required"`
	StartTime    time.Time  `json:"start_time" binding:"required"`
	EndTime      *time.Time `json:"end_time"`
	Venue        string     `json:"venue" binding:"required"`
	CreatedBy    string     `json:"created_by" binding:"required"`
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	created, err := h.service.Create(ctx, model.CreateEventParams{
		EventName:    req.EventName,
		EventType:    req.EventType,
		EventDetails: req.EventDetails,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Venue:        req.Venue,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		h.handleError(c, err, "CreateEvent")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event added successfully",
		"event_id": created.EventID,
	})
}

func (h *EventHandler) RecentEvents(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	events, err := h.service.RecentEvents(ctx)
	if err != nil {
		h.handleError(c, err, "RecentEvents")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(events),
		"data":    events,
	})
}

func (h *EventHandler) DayEvents(c *gin.Context) {
	chosenDate := c.Query("chosen_date")
	if chosenDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingChosenDate.Error()})
		return
	}
	date, err := time.ParseInLocation(chosenDateLayout, chosenDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chosen_date must be in YYYY-MM-DD format"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	events, err := h.service.DayEvents(ctx, date, c.Query("event_type"))
	if err != nil {
		h.handleError(c, err, "DayEvents")
		return
	}

	if len(events) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No events found",
			"events":  events,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) MonthEvents(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidMonth.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	monthEvents, err := h.service.MonthEvents(ctx, time.Month(month), c.Query("event_type"))
	if err != nil {
		h.handleError(c, err, "MonthEvents")
		return
	}

	if len(monthEvents) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":      "No events found for the specified month",
			"month_events": monthEvents,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"month_events": monthEvents})
}

// handleError maps validation errors to 400 and everything else, store
// failures included, to a generic 500. Store error detail is logged only.
func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidMonth):
		log.Warn("Invalid month")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *EventHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
