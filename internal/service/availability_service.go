package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-jobs-api/internal/analysis"
	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
)

type availabilityRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.AvailabilityWindow, error)
	GetByID(ctx context.Context, id string) (*models.AvailabilityWindow, error)
	Create(ctx context.Context, window *models.AvailabilityWindow) error
	Delete(ctx context.Context, id string) error
}

// AvailabilityService owns weekly-availability use cases.
type AvailabilityService struct {
	repo      availabilityRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(repo availabilityRepository, validate *validator.Validate, logger *zap.Logger) *AvailabilityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{repo: repo, validator: validate, logger: logger}
}

// List returns all of the user's declared windows.
func (s *AvailabilityService) List(ctx context.Context, userID string) ([]models.AvailabilityWindow, error) {
	windows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list availability")
	}
	return windows, nil
}

// Create validates and stores a new window.
func (s *AvailabilityService) Create(ctx context.Context, userID string, req dto.CreateAvailabilityRequest) (*models.AvailabilityWindow, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid availability payload")
	}
	start, err := analysis.ParseClock(req.StartTime)
	if err != nil {
		return nil, mapEngineError(err)
	}
	if req.EndTime != nil {
		end, err := analysis.ParseClock(*req.EndTime)
		if err != nil {
			return nil, mapEngineError(err)
		}
		if end < start {
			return nil, mapEngineError(&analysis.RangeError{Start: req.StartTime, End: *req.EndTime})
		}
	}

	window := &models.AvailabilityWindow{
		UserID:    userID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.Create(ctx, window); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create availability window")
	}
	return window, nil
}

// Delete removes a window the user owns.
func (s *AvailabilityService) Delete(ctx context.Context, userID, windowID string) error {
	window, err := s.repo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "availability window not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load availability window")
	}
	if window.UserID != userID {
		return appErrors.Clone(appErrors.ErrForbidden, "availability window belongs to another user")
	}
	if err := s.repo.Delete(ctx, windowID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete availability window")
	}
	return nil
}
