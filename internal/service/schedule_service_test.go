package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-jobs-api/internal/analysis"
	"github.com/noah-isme/student-jobs-api/internal/models"
)

type fakeEventLister struct {
	events []models.ScheduleEvent
	err    error
}

func (f *fakeEventLister) ListAllByUser(context.Context, string, time.Time, time.Time) ([]models.ScheduleEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeAvailabilityLister struct {
	windows []models.AvailabilityWindow
	err     error
}

func (f *fakeAvailabilityLister) ListByUser(context.Context, string) ([]models.AvailabilityWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.windows, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestScheduleServiceAnalyze(t *testing.T) {
	events := &fakeEventLister{events: []models.ScheduleEvent{
		{ID: "e1", UserID: "stu-1", Title: "Algorithms", Category: models.EventClass, Date: date(2024, time.January, 15), StartTime: "09:00", EndTime: "10:30"},
		{ID: "e2", UserID: "stu-1", Title: "Barista shift", Category: models.EventWork, Date: date(2024, time.January, 15), StartTime: "10:00", EndTime: "11:00"},
	}}
	availability := &fakeAvailabilityLister{windows: []models.AvailabilityWindow{
		{ID: "w1", UserID: "stu-1", Weekday: "Monday", StartTime: "09:00", EndTime: strPtr("17:00")},
	}}
	svc := NewScheduleService(events, availability, analysis.New(analysis.Config{}), nil, nil)

	report, err := svc.Analyze(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21))
	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, analysis.SeverityMedium, report.Conflicts[0].Severity)
	assert.NotEmpty(t, report.FreeSlots)
	assert.GreaterOrEqual(t, report.Balance.Score, 0)
	assert.LessOrEqual(t, report.Balance.Score, 100)
}

func TestScheduleServiceAnalyzeFullSnapshot(t *testing.T) {
	// More events than one listing page; the clash at the tail must still
	// surface.
	events := make([]models.ScheduleEvent, 0, 52)
	for i := 0; i < 50; i++ {
		start, end := "09:00", "09:30"
		if i%2 == 1 {
			start, end = "10:00", "10:30"
		}
		events = append(events, models.ScheduleEvent{
			ID:        fmt.Sprintf("filler-%d", i),
			UserID:    "stu-1",
			Title:     fmt.Sprintf("Lecture %d", i),
			Category:  models.EventClass,
			Date:      date(2024, time.January, i/2+1),
			StartTime: start,
			EndTime:   end,
		})
	}
	events = append(events,
		models.ScheduleEvent{ID: "c1", UserID: "stu-1", Title: "Seminar", Category: models.EventClass, Date: date(2024, time.January, 26), StartTime: "13:00", EndTime: "15:00"},
		models.ScheduleEvent{ID: "c2", UserID: "stu-1", Title: "Shift", Category: models.EventWork, Date: date(2024, time.January, 26), StartTime: "14:00", EndTime: "16:00"},
	)
	svc := NewScheduleService(&fakeEventLister{events: events}, &fakeAvailabilityLister{}, nil, nil, nil)

	report, err := svc.Analyze(context.Background(), "stu-1", date(2024, time.January, 1), date(2024, time.January, 31))
	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "c1", report.Conflicts[0].EventA.ID)
	assert.Equal(t, "c2", report.Conflicts[0].EventB.ID)
}

func TestScheduleServiceAnalyzeUnknownWeekday(t *testing.T) {
	events := &fakeEventLister{}
	availability := &fakeAvailabilityLister{windows: []models.AvailabilityWindow{
		{ID: "w1", UserID: "stu-1", Weekday: "Funday", StartTime: "09:00"},
	}}
	svc := NewScheduleService(events, availability, nil, nil, nil)

	_, err := svc.Analyze(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Funday")
}

func TestScheduleServiceAnalyzeMapsFormatError(t *testing.T) {
	events := &fakeEventLister{events: []models.ScheduleEvent{
		{ID: "e1", UserID: "stu-1", Title: "Broken", Category: models.EventClass, Date: date(2024, time.January, 15), StartTime: "9am", EndTime: "10:00"},
	}}
	svc := NewScheduleService(events, &fakeAvailabilityLister{}, nil, nil, nil)

	_, err := svc.Analyze(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9am")
}

func TestScheduleServiceExportCSV(t *testing.T) {
	events := &fakeEventLister{events: []models.ScheduleEvent{
		{ID: "e1", UserID: "stu-1", Title: "Algorithms", Category: models.EventClass, Date: date(2024, time.January, 15), StartTime: "09:00", EndTime: "10:30"},
	}}
	svc := NewScheduleService(events, &fakeAvailabilityLister{}, nil, nil, nil)

	payload, contentType, err := svc.Export(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "section,item,detail,value")
	assert.Contains(t, string(payload), "balance")
}

func TestScheduleServiceExportUnknownFormat(t *testing.T) {
	svc := NewScheduleService(&fakeEventLister{}, &fakeAvailabilityLister{}, nil, nil, nil)
	_, _, err := svc.Export(context.Background(), "stu-1", date(2024, time.January, 15), date(2024, time.January, 21), "xlsx")
	require.Error(t, err)
}
