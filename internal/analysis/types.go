package analysis

import "time"

// Category labels what a schedule entry occupies the student with.
type Category string

const (
	CategoryClass    Category = "class"
	CategoryWork     Category = "paid_work"
	CategoryDeadline Category = "deadline"
	CategoryOther    Category = "other"
)

// Event is the engine's view of a scheduled occurrence. Times are HH:MM
// wall-clock literals; Date carries the calendar day only.
type Event struct {
	ID        string
	Title     string
	Category  Category
	Date      time.Time
	StartTime string
	EndTime   string
}

// Window declares a recurring weekly interval in which the student is
// nominally free. An empty EndTime means the window runs to end of day.
type Window struct {
	Weekday   time.Weekday
	StartTime string
	EndTime   string
}

// Severity ranks how badly two events collide.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ConflictEvent is the slice of an Event a conflict report needs.
type ConflictEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Conflict describes one overlapping pair of events on a date. Pairs are
// unordered: (A,B) and (B,A) are the same conflict and appear once.
type Conflict struct {
	Date           string        `json:"date"`
	EventA         ConflictEvent `json:"event_a"`
	EventB         ConflictEvent `json:"event_b"`
	OverlapMinutes int           `json:"overlap_minutes"`
	Severity       Severity      `json:"severity"`
	Suggestion     string        `json:"suggestion"`
	ScoreImpact    int           `json:"score_impact"`
}

// OverloadLevel classifies how far past the threshold a day's load runs.
type OverloadLevel string

const (
	OverloadModerate OverloadLevel = "moderate"
	OverloadHigh     OverloadLevel = "high"
	OverloadCritical OverloadLevel = "critical"
)

// OverloadedDay reports one date whose total busy time crosses the threshold.
type OverloadedDay struct {
	Date            string        `json:"date"`
	Weekday         string        `json:"weekday"`
	TotalMinutes    int           `json:"total_minutes"`
	TotalHours      float64       `json:"total_hours"`
	Events          []string      `json:"events"`
	Level           OverloadLevel `json:"level"`
	Recommendations []string      `json:"recommendations"`
}

// FreeSlot is a maximal usable gap inside an availability window.
type FreeSlot struct {
	Weekday       string  `json:"weekday"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"duration_hours"`
}

// TimeStats aggregates how the range's waking hours were allocated.
type TimeStats struct {
	WorkHours    float64 `json:"work_hours"`
	StudyHours   float64 `json:"study_hours"`
	RestHours    float64 `json:"rest_hours"`
	OtherHours   float64 `json:"other_hours"`
	WorkPercent  float64 `json:"work_percent"`
	StudyPercent float64 `json:"study_percent"`
	RestPercent  float64 `json:"rest_percent"`
	OtherPercent float64 `json:"other_percent"`
}

// ScoreBreakdown names every signed component feeding the balance score so
// the reasoning stays auditable next to the aggregate.
type ScoreBreakdown struct {
	Base            int `json:"base"`
	WorkStudyRatio  int `json:"work_study_ratio"`
	Rest            int `json:"rest"`
	ConflictPenalty int `json:"conflict_penalty"`
	OverloadPenalty int `json:"overload_penalty"`
	Bonus           int `json:"bonus"`
}

// Total is the raw pre-clamp sum of all components.
func (b ScoreBreakdown) Total() int {
	return b.Base + b.WorkStudyRatio + b.Rest + b.ConflictPenalty + b.OverloadPenalty + b.Bonus
}

// BalanceScore pairs the clamped [0,100] score with its breakdown.
type BalanceScore struct {
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Report is the engine's single output: everything derived from one snapshot
// of events and availability over a date range.
type Report struct {
	RangeStart     string          `json:"range_start"`
	RangeEnd       string          `json:"range_end"`
	Stats          TimeStats       `json:"stats"`
	Conflicts      []Conflict      `json:"conflicts"`
	OverloadedDays []OverloadedDay `json:"overloaded_days"`
	FreeSlots      []FreeSlot      `json:"free_slots"`
	Balance        BalanceScore    `json:"balance"`
}

const dateKeyLayout = "2006-01-02"

// DateKey renders the calendar-day grouping key for a date.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}
