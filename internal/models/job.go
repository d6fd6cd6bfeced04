package models

import "time"

// JobPosting represents a part-time position with a fixed weekly shift.
type JobPosting struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Company     string    `db:"company" json:"company"`
	Description string    `db:"description" json:"description"`
	HourlyRate  float64   `db:"hourly_rate" json:"hourly_rate"`
	Weekday     string    `db:"weekday" json:"weekday"`
	ShiftStart  string    `db:"shift_start" json:"shift_start"`
	ShiftEnd    string    `db:"shift_end" json:"shift_end"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// JobFilter narrows down job postings for listing.
type JobFilter struct {
	Weekday  string
	MinRate  *float64
	Active   *bool
	Page     int
	PageSize int
}

// JobMatch pairs a posting with the free slot that can host its shift.
type JobMatch struct {
	Job       JobPosting `json:"job"`
	SlotStart string     `json:"slot_start"`
	SlotEnd   string     `json:"slot_end"`
	Weekday   string     `json:"weekday"`
}
