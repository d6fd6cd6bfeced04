package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOverloadedDaysThresholds(t *testing.T) {
	cfg := DefaultConfig()
	// 2024-01-15: 14.5h, 2024-01-16: 10h, 2024-01-17: 9h (below threshold).
	events := []Event{
		ev("e1", "Morning classes", CategoryClass, day(2024, time.January, 15), "08:00", "15:30"),
		ev("e2", "Evening shift", CategoryWork, day(2024, time.January, 15), "16:00", "23:00"),
		ev("e3", "Full shift", CategoryWork, day(2024, time.January, 16), "08:00", "18:00"),
		ev("e4", "Light day", CategoryClass, day(2024, time.January, 17), "08:00", "17:00"),
	}
	days, err := DetectOverloadedDays(events, cfg)
	require.NoError(t, err)
	require.Len(t, days, 2)

	// Worst day first.
	assert.Equal(t, "2024-01-15", days[0].Date)
	assert.Equal(t, OverloadCritical, days[0].Level)
	assert.InDelta(t, 14.5, days[0].TotalHours, 0.001)
	assert.Equal(t, "Monday", days[0].Weekday)
	assert.Equal(t, []string{"Morning classes", "Evening shift"}, days[0].Events)

	assert.Equal(t, "2024-01-16", days[1].Date)
	assert.Equal(t, OverloadModerate, days[1].Level)
}

func TestDetectOverloadedDaysHighBracket(t *testing.T) {
	events := []Event{
		ev("e1", "Shift", CategoryWork, day(2024, time.January, 15), "08:00", "21:00"),
	}
	days, err := DetectOverloadedDays(events, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, OverloadHigh, days[0].Level)
}

func TestDetectOverloadedDaysWorkAndClassHint(t *testing.T) {
	date := day(2024, time.January, 15)
	events := []Event{
		ev("e1", "Classes", CategoryClass, date, "08:00", "14:00"),
		ev("e2", "Shift", CategoryWork, date, "14:30", "20:30"),
	}
	days, err := DetectOverloadedDays(events, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Contains(t, days[0].Recommendations, "alternate work and study with a buffer between them")
}

func TestDetectOverloadedDaysNoMixHintWithoutBoth(t *testing.T) {
	events := []Event{
		ev("e1", "Double shift", CategoryWork, day(2024, time.January, 15), "08:00", "19:00"),
	}
	days, err := DetectOverloadedDays(events, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.NotContains(t, days[0].Recommendations, "alternate work and study with a buffer between them")
}

func TestDetectOverloadedDaysEmptyInput(t *testing.T) {
	days, err := DetectOverloadedDays(nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, days)
}
