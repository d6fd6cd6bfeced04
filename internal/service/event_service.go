package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-jobs-api/internal/analysis"
	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
)

type eventRepository interface {
	ListByUser(ctx context.Context, userID string, filter models.EventFilter) ([]models.ScheduleEvent, int, error)
	GetByID(ctx context.Context, id string) (*models.ScheduleEvent, error)
	Create(ctx context.Context, event *models.ScheduleEvent) error
	Update(ctx context.Context, event *models.ScheduleEvent) error
	Delete(ctx context.Context, id string) error
}

// EventService owns schedule-event use cases.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs an EventService.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, validator: validate, logger: logger}
}

// mapEngineError converts engine time errors into HTTP-aware validation
// errors. Malformed input is reported, never silently corrected.
func mapEngineError(err error) error {
	var fe *analysis.FormatError
	if errors.As(err, &fe) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fe.Error())
	}
	var re *analysis.RangeError
	if errors.As(err, &re) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, re.Error())
	}
	return err
}

// validateTimePair checks both clock literals and their ordering.
func validateTimePair(start, end string) error {
	s, err := analysis.ParseClock(start)
	if err != nil {
		return mapEngineError(err)
	}
	e, err := analysis.ParseClock(end)
	if err != nil {
		return mapEngineError(err)
	}
	if e < s {
		return mapEngineError(&analysis.RangeError{Start: start, End: end})
	}
	return nil
}

// List returns a user's events with pagination.
func (s *EventService) List(ctx context.Context, userID string, filter models.EventFilter) ([]models.ScheduleEvent, *models.Pagination, error) {
	events, total, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	return events, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Create validates and stores a new event for the user.
func (s *EventService) Create(ctx context.Context, userID string, req dto.CreateEventRequest) (*models.ScheduleEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if err := validateTimePair(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date format, expected YYYY-MM-DD")
	}

	event := &models.ScheduleEvent{
		UserID:    userID,
		Title:     req.Title,
		Category:  models.EventCategory(req.Category),
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	return event, nil
}

// Update applies partial changes to an event the user owns.
func (s *EventService) Update(ctx context.Context, userID, eventID string, req dto.UpdateEventRequest) (*models.ScheduleEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	event, err := s.getOwned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Category != nil {
		event.Category = models.EventCategory(*req.Category)
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date format, expected YYYY-MM-DD")
		}
		event.Date = date
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if err := validateTimePair(event.StartTime, event.EndTime); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	return event, nil
}

// Delete removes an event the user owns.
func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	if _, err := s.getOwned(ctx, userID, eventID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}

func (s *EventService) getOwned(ctx context.Context, userID, eventID string) (*models.ScheduleEvent, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if event.UserID != userID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "event belongs to another user")
	}
	return event, nil
}
