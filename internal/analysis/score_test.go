package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBalanceClampsBonusOverflow(t *testing.T) {
	// ratio 1.0 (+10), rest 38% (+10), zero conflicts (+10): raw 130.
	stats := TimeStats{WorkHours: 30, StudyHours: 30, RestPercent: 38}
	result := ScoreBalance(stats, nil, nil, DefaultConfig())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 130, result.Breakdown.Total())
	assert.Equal(t, 10, result.Breakdown.WorkStudyRatio)
	assert.Equal(t, 10, result.Breakdown.Rest)
	assert.Equal(t, 10, result.Breakdown.Bonus)
}

func TestScoreBalanceClampsPathologicalPenalties(t *testing.T) {
	conflicts := make([]Conflict, 50)
	for i := range conflicts {
		conflicts[i] = Conflict{Severity: SeverityCritical, OverlapMinutes: 120, ScoreImpact: -60}
	}
	stats := TimeStats{WorkHours: 60, StudyHours: 5, RestPercent: 10}
	result := ScoreBalance(stats, conflicts, []OverloadedDay{{Level: OverloadCritical}}, DefaultConfig())

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, -3000, result.Breakdown.ConflictPenalty)
	assert.Negative(t, result.Breakdown.Total())
}

func TestScoreBalanceRatioAdjustments(t *testing.T) {
	cases := []struct {
		work, study float64
		want        int
	}{
		{30, 30, +10},  // 1.0
		{18, 30, +10},  // 0.6
		{36, 30, +10},  // 1.2
		{61, 30, -15},  // > 2
		{8, 30, -10},   // < 0.3
		{45, 30, 0},    // 1.5, neutral
		{0.2, 0, -10},  // study floored at 1h
	}
	for _, tc := range cases {
		got := ratioAdjustment(tc.work, tc.study)
		assert.Equal(t, tc.want, got, "work=%v study=%v", tc.work, tc.study)
	}
}

func TestScoreBalanceRestAdjustments(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		rest float64
		want int
	}{
		{10, -30},
		{19.9, -30},
		{20, -20},
		{29.9, -20},
		{30, -10},
		{34.9, -10},
		{35, +10},
		{45, +10},
		{46, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, restAdjustment(tc.rest, cfg), "rest=%v", tc.rest)
	}
}

func TestScoreBalanceOverloadPenalties(t *testing.T) {
	days := []OverloadedDay{
		{Level: OverloadCritical},
		{Level: OverloadHigh},
		{Level: OverloadModerate},
	}
	assert.Equal(t, -30, overloadPenalty(days))
}

func TestScoreBalanceOtherActivityBonus(t *testing.T) {
	stats := TimeStats{WorkHours: 45, StudyHours: 30, RestPercent: 50, OtherHours: 5}
	result := ScoreBalance(stats, []Conflict{{ScoreImpact: -5}}, nil, DefaultConfig())
	// +5 for activity, no zero-conflict bonus.
	assert.Equal(t, 5, result.Breakdown.Bonus)
	assert.Equal(t, -5, result.Breakdown.ConflictPenalty)
	assert.Equal(t, 100, result.Score)
}

func TestScoreBalanceZeroInput(t *testing.T) {
	result := ScoreBalance(TimeStats{RestPercent: 100}, nil, nil, DefaultConfig())
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}
