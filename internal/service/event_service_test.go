package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
)

type fakeEventRepo struct {
	byID    map[string]*models.ScheduleEvent
	created []models.ScheduleEvent
	updated []models.ScheduleEvent
	deleted []string
}

func (f *fakeEventRepo) ListByUser(context.Context, string, models.EventFilter) ([]models.ScheduleEvent, int, error) {
	return nil, 0, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*models.ScheduleEvent, error) {
	if ev, ok := f.byID[id]; ok {
		copied := *ev
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEventRepo) Create(_ context.Context, event *models.ScheduleEvent) error {
	f.created = append(f.created, *event)
	return nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *models.ScheduleEvent) error {
	f.updated = append(f.updated, *event)
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func validCreateRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:     "Algorithms",
		Category:  "class",
		Date:      "2024-01-15",
		StartTime: "09:00",
		EndTime:   "10:30",
	}
}

func TestEventServiceCreate(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, nil, nil)

	event, err := svc.Create(context.Background(), "stu-1", validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "stu-1", event.UserID)
	assert.Equal(t, models.EventClass, event.Category)
	require.Len(t, repo.created, 1)
}

func TestEventServiceCreateRejectsMalformedTime(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, nil, nil)

	req := validCreateRequest()
	req.StartTime = "9:00"
	_, err := svc.Create(context.Background(), "stu-1", req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "9:00")
}

func TestEventServiceCreateRejectsInvertedTimes(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, nil, nil)

	req := validCreateRequest()
	req.StartTime = "11:00"
	req.EndTime = "10:00"
	_, err := svc.Create(context.Background(), "stu-1", req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, nil, nil)

	req := validCreateRequest()
	req.Category = "hobby"
	_, err := svc.Create(context.Background(), "stu-1", req)
	require.Error(t, err)
}

func TestEventServiceUpdateChecksOwnership(t *testing.T) {
	repo := &fakeEventRepo{byID: map[string]*models.ScheduleEvent{
		"ev-1": {ID: "ev-1", UserID: "stu-2", Title: "Lecture", Category: models.EventClass,
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "10:00"},
	}}
	svc := NewEventService(repo, nil, nil)

	title := "Renamed"
	_, err := svc.Update(context.Background(), "stu-1", "ev-1", dto.UpdateEventRequest{Title: &title})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestEventServiceUpdateRevalidatesTimes(t *testing.T) {
	repo := &fakeEventRepo{byID: map[string]*models.ScheduleEvent{
		"ev-1": {ID: "ev-1", UserID: "stu-1", Title: "Lecture", Category: models.EventClass,
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "10:00"},
	}}
	svc := NewEventService(repo, nil, nil)

	end := "08:00"
	_, err := svc.Update(context.Background(), "stu-1", "ev-1", dto.UpdateEventRequest{EndTime: &end})
	require.Error(t, err)
	assert.Empty(t, repo.updated)

	end = "11:00"
	event, err := svc.Update(context.Background(), "stu-1", "ev-1", dto.UpdateEventRequest{EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, "11:00", event.EndTime)
	require.Len(t, repo.updated, 1)
}

func TestEventServiceDeleteNotFound(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, nil, nil)
	err := svc.Delete(context.Background(), "stu-1", "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
