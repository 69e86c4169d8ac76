package models

import "time"

type Booking struct {
	ID               string    `bson:"_id,omitempty"`
	PatientID        string    `bson:"patientId"`
	DoctorID         string    `bson:"doctorId"`
	Date             string    `bson:"date"`
	StartTime        string    `bson:"startTime"`
	EndTime          string    `bson:"endTime"`
	Status           string    `bson:"status"`
	ConsultationType string    `bson:"consultationType"`
	Reason           string    `bson:"reason,omitempty"`
	MeetLink         string    `bson:"meetLink,omitempty"`
	AcceptedAt       *time.Time `bson:"acceptedAt,omitempty"`
	CompletedAt      *time.Time `bson:"completedAt,omitempty"`
	TimeModel        `bson:",inline"`
}
