package dto

// CreateJobRequest is the payload for publishing a job posting.
type CreateJobRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Company     string  `json:"company" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	HourlyRate  float64 `json:"hourly_rate" validate:"gte=0"`
	Weekday     string  `json:"weekday" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	ShiftStart  string  `json:"shift_start" validate:"required"`
	ShiftEnd    string  `json:"shift_end" validate:"required"`
}
