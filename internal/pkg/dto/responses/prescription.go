package responses

import "medxbay-service/internal/app/models"

type Prescription struct {
	ID          string            `json:"id"`
	BookingID   string            `json:"booking_id"`
	DoctorID    string            `json:"doctor_id"`
	DoctorName  string            `json:"doctor_name,omitempty"`
	PatientID   string            `json:"patient_id"`
	PatientName string            `json:"patient_name,omitempty"`
	Medicines   []models.Medicine `json:"medicines"`
	Notes       string            `json:"notes,omitempty"`
	IssuedAt    string            `json:"issued_at"`
}
