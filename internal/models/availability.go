package models

import "time"

// AvailabilityWindow declares when a student is in principle free on a
// recurring weekday, independent of specific dates. A nil EndTime means the
// window runs to end of day.
type AvailabilityWindow struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Weekday   string    `db:"weekday" json:"weekday"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   *string   `db:"end_time" json:"end_time,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeekday resolves a weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[name]
	return wd, ok
}
