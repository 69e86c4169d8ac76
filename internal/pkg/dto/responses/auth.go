package responses

type Register struct {
	UserID    string `json:"user_id"`
	DoctorID  string `json:"doctor_id,omitempty"`
	PatientID string `json:"patient_id,omitempty"`
}

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
