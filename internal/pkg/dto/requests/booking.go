package requests

type CreateBooking struct {
	DoctorID         string `json:"doctor_id" validate:"required"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime        string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime          string `json:"end_time" validate:"required,datetime=15:04"`
	ConsultationType string `json:"consultation_type" validate:"required,oneof=video in-person"`
	Reason           string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}
