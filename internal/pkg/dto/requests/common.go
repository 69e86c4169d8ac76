package requests

type QueryParams struct {
	Page      int
	PageSize  int
	Status    string
	PatientID string
	DoctorID  string
	Category  string
	Condition string
}
