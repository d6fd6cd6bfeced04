package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-jobs-api/internal/analysis"
	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
)

type fakeJobRepo struct {
	jobs        []models.JobPosting
	created     []models.JobPosting
	deactivated []string
	listCalls   int
}

func (f *fakeJobRepo) List(context.Context, models.JobFilter) ([]models.JobPosting, int, error) {
	f.listCalls++
	return f.jobs, len(f.jobs), nil
}

func (f *fakeJobRepo) Create(_ context.Context, job *models.JobPosting) error {
	f.created = append(f.created, *job)
	return nil
}

func (f *fakeJobRepo) ListActive(context.Context) ([]models.JobPosting, error) {
	var active []models.JobPosting
	for _, job := range f.jobs {
		if job.Active {
			active = append(active, job)
		}
	}
	return active, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*models.JobPosting, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeJobRepo) Deactivate(_ context.Context, id string) error {
	f.deactivated = append(f.deactivated, id)
	return nil
}

type fakeScheduleAnalyzer struct {
	report *analysis.Report
	err    error
}

func (f *fakeScheduleAnalyzer) Analyze(context.Context, string, time.Time, time.Time) (*analysis.Report, error) {
	return f.report, f.err
}

// stubCacheRepo is an in-memory CacheRepository.
type stubCacheRepo struct {
	mu    sync.Mutex
	store map[string][]byte
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		s.store = map[string][]byte{}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = raw
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = map[string][]byte{}
	return nil
}

func TestJobServiceMatchFitsShiftInsideSlot(t *testing.T) {
	schedule := &fakeScheduleAnalyzer{report: &analysis.Report{
		FreeSlots: []analysis.FreeSlot{
			{Weekday: "Monday", Start: "13:00", End: "17:00", DurationHours: 4},
			{Weekday: "Monday", Start: "09:00", End: "12:00", DurationHours: 3},
		},
	}}
	repo := &fakeJobRepo{jobs: []models.JobPosting{
		{ID: "job-1", Title: "Cafe", Weekday: "Monday", ShiftStart: "14:00", ShiftEnd: "16:00", HourlyRate: 12, Active: true},
		{ID: "job-2", Title: "Library", Weekday: "Monday", ShiftStart: "11:00", ShiftEnd: "14:00", HourlyRate: 15, Active: true},
		{ID: "job-3", Title: "Weekend gig", Weekday: "Saturday", ShiftStart: "09:00", ShiftEnd: "12:00", HourlyRate: 20, Active: true},
	}}
	svc := NewJobService(repo, schedule, nil, nil, zap.NewNop())

	matches, err := svc.Match(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21))
	require.NoError(t, err)
	// job-2 spans two slots without fitting either; job-3 has no Saturday slot.
	require.Len(t, matches, 1)
	assert.Equal(t, "job-1", matches[0].Job.ID)
	assert.Equal(t, "13:00", matches[0].SlotStart)
}

func TestJobServiceMatchRanksByRate(t *testing.T) {
	schedule := &fakeScheduleAnalyzer{report: &analysis.Report{
		FreeSlots: []analysis.FreeSlot{{Weekday: "Monday", Start: "08:00", End: "20:00", DurationHours: 12}},
	}}
	repo := &fakeJobRepo{jobs: []models.JobPosting{
		{ID: "job-1", Weekday: "Monday", ShiftStart: "09:00", ShiftEnd: "12:00", HourlyRate: 10, Active: true},
		{ID: "job-2", Weekday: "Monday", ShiftStart: "13:00", ShiftEnd: "16:00", HourlyRate: 18, Active: true},
	}}
	svc := NewJobService(repo, schedule, nil, nil, zap.NewNop())

	matches, err := svc.Match(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21))
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "job-2", matches[0].Job.ID)
}

func TestJobServiceMatchScansWholeBoard(t *testing.T) {
	// Far more postings than one listing page; only the last one fits.
	schedule := &fakeScheduleAnalyzer{report: &analysis.Report{
		FreeSlots: []analysis.FreeSlot{{Weekday: "Monday", Start: "09:00", End: "12:00", DurationHours: 3}},
	}}
	repo := &fakeJobRepo{}
	for i := 0; i < 210; i++ {
		repo.jobs = append(repo.jobs, models.JobPosting{
			ID: fmt.Sprintf("job-%03d", i), Weekday: "Monday",
			ShiftStart: "06:00", ShiftEnd: "07:00", HourlyRate: 10, Active: true,
		})
	}
	repo.jobs = append(repo.jobs, models.JobPosting{
		ID: "job-fit", Weekday: "Monday", ShiftStart: "10:00", ShiftEnd: "11:00", HourlyRate: 12, Active: true,
	})
	svc := NewJobService(repo, schedule, nil, nil, zap.NewNop())

	matches, err := svc.Match(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "job-fit", matches[0].Job.ID)
}

func TestJobServiceDeactivate(t *testing.T) {
	repo := &fakeJobRepo{jobs: []models.JobPosting{{ID: "job-1", Title: "Cafe", Active: true}}}
	cacheRepo := &stubCacheRepo{store: map[string][]byte{jobListCachePrefix + "x": []byte("{}")}}
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := NewJobService(repo, nil, cache, nil, zap.NewNop())

	require.NoError(t, svc.Deactivate(context.Background(), "job-1"))
	assert.Equal(t, []string{"job-1"}, repo.deactivated)
	assert.Empty(t, cacheRepo.store)
}

func TestJobServiceDeactivateNotFound(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, nil, nil, nil, zap.NewNop())

	err := svc.Deactivate(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestJobServiceListUsesCache(t *testing.T) {
	repo := &fakeJobRepo{jobs: []models.JobPosting{{ID: "job-1", Title: "Cafe", Active: true}}}
	cache := NewCacheService(&stubCacheRepo{}, nil, time.Minute, zap.NewNop(), true)
	svc := NewJobService(repo, nil, cache, nil, zap.NewNop())

	_, _, err := svc.List(context.Background(), models.JobFilter{})
	require.NoError(t, err)
	_, pagination, err := svc.List(context.Background(), models.JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.TotalCount)
	assert.Equal(t, 1, repo.listCalls)
}

func TestJobServiceCreateInvalidatesCacheAndValidatesShift(t *testing.T) {
	repo := &fakeJobRepo{}
	cacheRepo := &stubCacheRepo{store: map[string][]byte{jobListCachePrefix + "x": []byte("{}")}}
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := NewJobService(repo, nil, cache, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), dto.CreateJobRequest{
		Title: "Cafe", Company: "Beans", Weekday: "Monday", ShiftStart: "16:00", ShiftEnd: "09:00",
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)

	job, err := svc.Create(context.Background(), dto.CreateJobRequest{
		Title: "Cafe", Company: "Beans", Weekday: "Monday", ShiftStart: "09:00", ShiftEnd: "16:00",
	})
	require.NoError(t, err)
	assert.True(t, job.Active)
	assert.Empty(t, cacheRepo.store)
}
