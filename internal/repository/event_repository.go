package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-jobs-api/internal/models"
)

// EventRepository persists schedule events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = "id, user_id, title, category, event_date, start_time, end_time, created_at, updated_at"

// ListByUser returns a user's events matching the filter.
func (r *EventRepository) ListByUser(ctx context.Context, userID string, filter models.EventFilter) ([]models.ScheduleEvent, int, error) {
	where := []string{"user_id = $1"}
	args := []interface{}{userID}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("event_date >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("event_date <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}
	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, *filter.Category)
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s FROM schedule_events WHERE %s ORDER BY event_date ASC, start_time ASC LIMIT %d OFFSET %d",
		eventColumns, whereClause, size, offset)
	var events []models.ScheduleEvent
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list schedule events: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM schedule_events WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count schedule events: %w", err)
	}
	return events, total, nil
}

// ListAllByUser returns every event of the user dated inside [from, to],
// without pagination. Analysis runs over this snapshot, so it must never be
// truncated.
func (r *EventRepository) ListAllByUser(ctx context.Context, userID string, from, to time.Time) ([]models.ScheduleEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM schedule_events WHERE user_id = $1 AND event_date >= $2 AND event_date <= $3 ORDER BY event_date ASC, start_time ASC",
		eventColumns)
	var events []models.ScheduleEvent
	if err := r.db.SelectContext(ctx, &events, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("list schedule events for analysis: %w", err)
	}
	return events, nil
}

// GetByID fetches one event.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.ScheduleEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM schedule_events WHERE id = $1", eventColumns)
	var event models.ScheduleEvent
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event.
func (r *EventRepository) Create(ctx context.Context, event *models.ScheduleEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	query := `INSERT INTO schedule_events (id, user_id, title, category, event_date, start_time, end_time, created_at, updated_at)
VALUES (:id, :user_id, :title, :category, :event_date, :start_time, :end_time, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create schedule event: %w", err)
	}
	return nil
}

// Update modifies an event.
func (r *EventRepository) Update(ctx context.Context, event *models.ScheduleEvent) error {
	event.UpdatedAt = time.Now().UTC()
	query := `UPDATE schedule_events SET title = :title, category = :category, event_date = :event_date,
start_time = :start_time, end_time = :end_time, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update schedule event: %w", err)
	}
	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM schedule_events WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete schedule event: %w", err)
	}
	return nil
}
