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

// JobRepository persists job postings.
type JobRepository struct {
	db *sqlx.DB
}

// NewJobRepository constructs a job repository.
func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = "id, title, company, description, hourly_rate, weekday, shift_start, shift_end, active, created_at, updated_at"

// List returns postings matching the filter.
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter) ([]models.JobPosting, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Weekday != "" {
		where = append(where, fmt.Sprintf("weekday = $%d", len(args)+1))
		args = append(args, filter.Weekday)
	}
	if filter.MinRate != nil {
		where = append(where, fmt.Sprintf("hourly_rate >= $%d", len(args)+1))
		args = append(args, *filter.MinRate)
	}
	if filter.Active != nil {
		where = append(where, fmt.Sprintf("active = $%d", len(args)+1))
		args = append(args, *filter.Active)
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

	query := fmt.Sprintf("SELECT %s FROM job_postings WHERE %s ORDER BY created_at DESC, id LIMIT %d OFFSET %d",
		jobColumns, whereClause, size, offset)
	var jobs []models.JobPosting
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list job postings: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM job_postings WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count job postings: %w", err)
	}
	return jobs, total, nil
}

// ListActive returns every active posting, without pagination. Matching
// considers the whole board, so the result must never be truncated.
func (r *JobRepository) ListActive(ctx context.Context) ([]models.JobPosting, error) {
	query := fmt.Sprintf("SELECT %s FROM job_postings WHERE active = true ORDER BY created_at DESC, id", jobColumns)
	var jobs []models.JobPosting
	if err := r.db.SelectContext(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("list active job postings: %w", err)
	}
	return jobs, nil
}

// GetByID fetches one posting.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.JobPosting, error) {
	query := fmt.Sprintf("SELECT %s FROM job_postings WHERE id = $1", jobColumns)
	var job models.JobPosting
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a posting.
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	query := `INSERT INTO job_postings (id, title, company, description, hourly_rate, weekday, shift_start, shift_end, active, created_at, updated_at)
VALUES (:id, :title, :company, :description, :hourly_rate, :weekday, :shift_start, :shift_end, :active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("create job posting: %w", err)
	}
	return nil
}

// Deactivate marks a posting inactive.
func (r *JobRepository) Deactivate(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE job_postings SET active = false, updated_at = $2 WHERE id = $1", id, time.Now().UTC()); err != nil {
		return fmt.Errorf("deactivate job posting: %w", err)
	}
	return nil
}
