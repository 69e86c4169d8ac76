package models

import "time"

type ChatMessage struct {
	SenderType string    `bson:"senderType" json:"senderType"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	Text       string    `bson:"text" json:"text"`
	Read       bool      `bson:"read" json:"read"`
	SentAt     time.Time `bson:"sentAt" json:"sentAt"`
}

// Chat is one patient-doctor conversation; messages are embedded in send order.
type Chat struct {
	ID        string        `bson:"_id,omitempty"`
	PatientID string        `bson:"patientId"`
	DoctorID  string        `bson:"doctorId"`
	Messages  []ChatMessage `bson:"messages"`
	TimeModel `bson:",inline"`
}
