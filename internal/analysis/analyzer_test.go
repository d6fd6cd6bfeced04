package analysis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWeek() ([]Event, []Window, time.Time, time.Time) {
	events := []Event{
		ev("e1", "Algorithms", CategoryClass, day(2024, time.January, 15), "09:00", "10:30"),
		ev("e2", "Barista shift", CategoryWork, day(2024, time.January, 15), "10:00", "11:00"),
		ev("e3", "Essay deadline", CategoryDeadline, day(2024, time.January, 16), "14:00", "16:00"),
		ev("e4", "Gym", CategoryOther, day(2024, time.January, 17), "18:00", "19:30"),
	}
	windows := []Window{
		{Weekday: time.Monday, StartTime: "09:00", EndTime: "17:00"},
		{Weekday: time.Wednesday, StartTime: "08:00"},
	}
	return events, windows, day(2024, time.January, 15), day(2024, time.January, 21)
}

func TestAnalyzeAssemblesReport(t *testing.T) {
	events, windows, from, to := sampleWeek()
	report, err := New(Config{}).Analyze(events, windows, from, to)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", report.RangeStart)
	assert.Equal(t, "2024-01-21", report.RangeEnd)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, SeverityMedium, report.Conflicts[0].Severity)
	assert.Empty(t, report.OverloadedDays)
	assert.NotEmpty(t, report.FreeSlots)
	assert.GreaterOrEqual(t, report.Balance.Score, 0)
	assert.LessOrEqual(t, report.Balance.Score, 100)
	assert.Equal(t, report.Balance.Breakdown.ConflictPenalty, report.Conflicts[0].ScoreImpact)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	events, windows, from, to := sampleWeek()
	analyzer := New(Config{})

	first, err := analyzer.Analyze(events, windows, from, to)
	require.NoError(t, err)
	second, err := analyzer.Analyze(events, windows, from, to)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAnalyzeInvertedRange(t *testing.T) {
	events, windows, from, to := sampleWeek()
	_, err := New(Config{}).Analyze(events, windows, to, from)
	var re *RangeError
	require.ErrorAs(t, err, &re)
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	report, err := New(Config{}).Analyze(nil, nil, day(2024, time.January, 15), day(2024, time.January, 21))
	require.NoError(t, err)
	assert.Empty(t, report.Conflicts)
	assert.Empty(t, report.OverloadedDays)
	assert.Empty(t, report.FreeSlots)
	assert.GreaterOrEqual(t, report.Balance.Score, 0)
	assert.LessOrEqual(t, report.Balance.Score, 100)
}

func TestAnalyzeStatsExcludeOutOfRangeEvents(t *testing.T) {
	events := []Event{
		ev("e1", "In range", CategoryWork, day(2024, time.January, 16), "09:00", "12:00"),
		ev("e2", "Out of range", CategoryWork, day(2024, time.February, 1), "09:00", "17:00"),
	}
	report, err := New(Config{}).Analyze(events, nil, day(2024, time.January, 15), day(2024, time.January, 21))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, report.Stats.WorkHours, 0.001)
}

func TestAnalyzeConflictsSeeAllDates(t *testing.T) {
	// Conflict grouping operates on every date present, even outside the
	// statistics range.
	events := []Event{
		ev("e1", "A", CategoryClass, day(2024, time.February, 1), "09:00", "11:00"),
		ev("e2", "B", CategoryWork, day(2024, time.February, 1), "10:00", "12:00"),
	}
	report, err := New(Config{}).Analyze(events, nil, day(2024, time.January, 15), day(2024, time.January, 21))
	require.NoError(t, err)
	assert.Len(t, report.Conflicts, 1)
	assert.Zero(t, report.Stats.WorkHours)
}

func TestAnalyzePropagatesFormatError(t *testing.T) {
	events := []Event{
		ev("e1", "Broken", CategoryClass, day(2024, time.January, 15), "09:00", "25:00"),
	}
	_, err := New(Config{}).Analyze(events, nil, day(2024, time.January, 15), day(2024, time.January, 21))
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "25:00", fe.Value)
}
