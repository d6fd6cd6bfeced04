package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-jobs-api/internal/analysis"
	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
)

type jobRepository interface {
	List(ctx context.Context, filter models.JobFilter) ([]models.JobPosting, int, error)
	ListActive(ctx context.Context) ([]models.JobPosting, error)
	GetByID(ctx context.Context, id string) (*models.JobPosting, error)
	Create(ctx context.Context, job *models.JobPosting) error
	Deactivate(ctx context.Context, id string) error
}

type scheduleAnalyzer interface {
	Analyze(ctx context.Context, userID string, from, to time.Time) (*analysis.Report, error)
}

const jobListCachePrefix = "jobs:list:"

// JobService owns the job board: listing, publishing, and matching postings
// against a student's computed free slots.
type JobService struct {
	repo      jobRepository
	schedule  scheduleAnalyzer
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJobService constructs a JobService.
func NewJobService(repo jobRepository, schedule scheduleAnalyzer, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *JobService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{repo: repo, schedule: schedule, cache: cache, validator: validate, logger: logger}
}

type cachedJobList struct {
	Jobs  []models.JobPosting `json:"jobs"`
	Total int                 `json:"total"`
}

// List returns postings matching the filter, served from cache when possible.
func (s *JobService) List(ctx context.Context, filter models.JobFilter) ([]models.JobPosting, *models.Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	filter.Page, filter.PageSize = page, size

	key := fmt.Sprintf("%s%s:%v:%v:%d:%d", jobListCachePrefix, filter.Weekday, ptrOrDash(filter.MinRate), boolOrDash(filter.Active), page, size)
	var cached cachedJobList
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached.Jobs, &models.Pagination{Page: page, PageSize: size, TotalCount: cached.Total}, nil
	}

	jobs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list jobs")
	}
	_ = s.cache.Set(ctx, key, cachedJobList{Jobs: jobs, Total: total}, 0)
	return jobs, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Create validates and publishes a new posting.
func (s *JobService) Create(ctx context.Context, req dto.CreateJobRequest) (*models.JobPosting, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid job payload")
	}
	if err := validateTimePair(req.ShiftStart, req.ShiftEnd); err != nil {
		return nil, err
	}

	job := &models.JobPosting{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Weekday:     req.Weekday,
		ShiftStart:  req.ShiftStart,
		ShiftEnd:    req.ShiftEnd,
		Active:      true,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create job")
	}
	_ = s.cache.Invalidate(ctx, jobListCachePrefix+"*")
	return job, nil
}

// Deactivate withdraws a posting from the board.
func (s *JobService) Deactivate(ctx context.Context, jobID string) error {
	if _, err := s.repo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "job not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load job")
	}
	if err := s.repo.Deactivate(ctx, jobID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deactivate job")
	}
	_ = s.cache.Invalidate(ctx, jobListCachePrefix+"*")
	return nil
}

// Match ranks the active postings whose weekly shift fits entirely inside
// one of the student's free slots over the given range.
func (s *JobService) Match(ctx context.Context, userID string, from, to time.Time) ([]models.JobMatch, error) {
	report, err := s.schedule.Analyze(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list jobs")
	}

	var matches []models.JobMatch
	for _, job := range jobs {
		shiftStart, err := analysis.ParseClock(job.ShiftStart)
		if err != nil {
			s.logger.Warn("skipping job with malformed shift", zap.String("job_id", job.ID), zap.Error(err))
			continue
		}
		shiftEnd, err := analysis.ParseClock(job.ShiftEnd)
		if err != nil {
			s.logger.Warn("skipping job with malformed shift", zap.String("job_id", job.ID), zap.Error(err))
			continue
		}
		for _, slot := range report.FreeSlots {
			if slot.Weekday != job.Weekday {
				continue
			}
			slotStart, _ := analysis.ParseClock(slot.Start)
			slotEnd, _ := analysis.ParseClock(slot.End)
			if slotStart <= shiftStart && shiftEnd <= slotEnd {
				matches = append(matches, models.JobMatch{
					Job:       job,
					SlotStart: slot.Start,
					SlotEnd:   slot.End,
					Weekday:   slot.Weekday,
				})
				break
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Job.HourlyRate != matches[j].Job.HourlyRate {
			return matches[i].Job.HourlyRate > matches[j].Job.HourlyRate
		}
		return matches[i].Job.ID < matches[j].Job.ID
	})
	return matches, nil
}

func ptrOrDash(v *float64) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}

func boolOrDash(v *bool) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}
