package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Role      string `bson:"role"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	DoctorID  string `bson:"doctorId,omitempty"`
	PatientID string `bson:"patientId,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) IsDoctor() bool {
	return u.DoctorID != ""
}

func (u *User) IsPatient() bool {
	return u.PatientID != ""
}
