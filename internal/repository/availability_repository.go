package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-jobs-api/internal/models"
)

// AvailabilityRepository persists weekly availability windows.
type AvailabilityRepository struct {
	db *sqlx.DB
}

// NewAvailabilityRepository constructs an availability repository.
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

const availabilityColumns = "id, user_id, weekday, start_time, end_time, created_at, updated_at"

// ListByUser returns all of a user's windows ordered by weekday and start.
func (r *AvailabilityRepository) ListByUser(ctx context.Context, userID string) ([]models.AvailabilityWindow, error) {
	query := fmt.Sprintf(`SELECT %s FROM availability_windows WHERE user_id = $1
ORDER BY array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], weekday), start_time`, availabilityColumns)
	var windows []models.AvailabilityWindow
	if err := r.db.SelectContext(ctx, &windows, query, userID); err != nil {
		return nil, fmt.Errorf("list availability windows: %w", err)
	}
	return windows, nil
}

// GetByID fetches one window.
func (r *AvailabilityRepository) GetByID(ctx context.Context, id string) (*models.AvailabilityWindow, error) {
	query := fmt.Sprintf("SELECT %s FROM availability_windows WHERE id = $1", availabilityColumns)
	var window models.AvailabilityWindow
	if err := r.db.GetContext(ctx, &window, query, id); err != nil {
		return nil, err
	}
	return &window, nil
}

// Create inserts a window.
func (r *AvailabilityRepository) Create(ctx context.Context, window *models.AvailabilityWindow) error {
	if window.ID == "" {
		window.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if window.CreatedAt.IsZero() {
		window.CreatedAt = now
	}
	window.UpdatedAt = now
	query := `INSERT INTO availability_windows (id, user_id, weekday, start_time, end_time, created_at, updated_at)
VALUES (:id, :user_id, :weekday, :start_time, :end_time, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, window); err != nil {
		return fmt.Errorf("create availability window: %w", err)
	}
	return nil
}

// Delete removes a window.
func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM availability_windows WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete availability window: %w", err)
	}
	return nil
}
