package requests

type PrescriptionMedicine struct {
	Name      string `json:"name" validate:"required,max=120"`
	Dosage    string `json:"dosage" validate:"required,max=60"`
	Frequency string `json:"frequency" validate:"required,max=60"`
	Duration  string `json:"duration" validate:"required,max=60"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=300"`
}

type CreatePrescription struct {
	BookingID string                 `json:"booking_id" validate:"required"`
	Medicines []PrescriptionMedicine `json:"medicines" validate:"required,min=1,dive"`
	Notes     string                 `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
