package dto

// CreateEventRequest is the payload for adding a schedule event.
type CreateEventRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Category  string `json:"category" validate:"required,oneof=class paid_work deadline other"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// UpdateEventRequest carries partial changes to a schedule event.
type UpdateEventRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Category  *string `json:"category,omitempty" validate:"omitempty,oneof=class paid_work deadline other"`
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}
