package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
	"github.com/noah-isme/student-jobs-api/pkg/response"
)

type eventService interface {
	List(ctx context.Context, userID string, filter models.EventFilter) ([]models.ScheduleEvent, *models.Pagination, error)
	Create(ctx context.Context, userID string, req dto.CreateEventRequest) (*models.ScheduleEvent, error)
	Update(ctx context.Context, userID, eventID string, req dto.UpdateEventRequest) (*models.ScheduleEvent, error)
	Delete(ctx context.Context, userID, eventID string) error
}

// EventHandler wires schedule-event CRUD to HTTP endpoints.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs the handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+" date, expected YYYY-MM-DD")
	}
	return &parsed, nil
}

// List godoc
// @Summary List the authenticated student's schedule events
// @Tags Schedule
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /schedule/events [get]
func (h *EventHandler) List(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := models.EventFilter{From: from, To: to}
	if raw := c.Query("category"); raw != "" {
		category := models.EventCategory(raw)
		if !models.ValidCategory(category) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown category"))
			return
		}
		filter.Category = &category
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))

	events, pagination, err := h.service.List(c.Request.Context(), claims.UserID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, pagination)
}

// Create godoc
// @Summary Add a schedule event
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /schedule/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	event, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update a schedule event
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /schedule/events/{id} [patch]
func (h *EventHandler) Update(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	event, err := h.service.Update(c.Request.Context(), claims.UserID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Delete godoc
// @Summary Delete a schedule event
// @Tags Schedule
// @Param id path string true "Event ID"
// @Success 204
// @Router /schedule/events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
