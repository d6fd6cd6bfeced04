package models

import "time"

// EventCategory labels what kind of commitment a schedule event is.
type EventCategory string

const (
	EventClass    EventCategory = "class"
	EventWork     EventCategory = "paid_work"
	EventDeadline EventCategory = "deadline"
	EventOther    EventCategory = "other"
)

// ValidCategory reports whether the category belongs to the fixed set.
func ValidCategory(c EventCategory) bool {
	switch c {
	case EventClass, EventWork, EventDeadline, EventOther:
		return true
	}
	return false
}

// ScheduleEvent represents one scheduled occurrence in a student's calendar.
// StartTime and EndTime are HH:MM wall-clock literals; Date carries the
// calendar day only.
type ScheduleEvent struct {
	ID        string        `db:"id" json:"id"`
	UserID    string        `db:"user_id" json:"user_id"`
	Title     string        `db:"title" json:"title"`
	Category  EventCategory `db:"category" json:"category"`
	Date      time.Time     `db:"event_date" json:"date"`
	StartTime string        `db:"start_time" json:"start_time"`
	EndTime   string        `db:"end_time" json:"end_time"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// EventFilter narrows down schedule events for listing.
type EventFilter struct {
	From     *time.Time
	To       *time.Time
	Category *EventCategory
	Page     int
	PageSize int
}
