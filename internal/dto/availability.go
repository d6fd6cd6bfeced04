package dto

// CreateAvailabilityRequest declares one recurring weekly free window.
type CreateAvailabilityRequest struct {
	Weekday   string  `json:"weekday" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   *string `json:"end_time,omitempty"`
}
