package responses

type Booking struct {
	ID               string `json:"id"`
	DoctorID         string `json:"doctor_id"`
	DoctorName       string `json:"doctor_name,omitempty"`
	PatientID        string `json:"patient_id"`
	PatientName      string `json:"patient_name,omitempty"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Status           string `json:"status"`
	ConsultationType string `json:"consultation_type"`
	Reason           string `json:"reason,omitempty"`
	MeetLink         string `json:"meet_link,omitempty"`
}
