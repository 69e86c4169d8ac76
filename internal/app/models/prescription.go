package models

type Medicine struct {
	Name      string `bson:"name" json:"name"`
	Dosage    string `bson:"dosage" json:"dosage"`
	Frequency string `bson:"frequency" json:"frequency"`
	Duration  string `bson:"duration" json:"duration"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type Prescription struct {
	ID        string     `bson:"_id,omitempty"`
	BookingID string     `bson:"bookingId"`
	DoctorID  string     `bson:"doctorId"`
	PatientID string     `bson:"patientId"`
	Medicines []Medicine `bson:"medicines"`
	Notes     string     `bson:"notes,omitempty"`
	TimeModel `bson:",inline"`
}
