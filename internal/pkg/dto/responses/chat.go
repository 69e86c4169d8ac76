package responses

import "medxbay-service/internal/app/models"

type ChatSummary struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name,omitempty"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name,omitempty"`
	LastMessage string `json:"last_message,omitempty"`
	UnreadCount int    `json:"unread_count"`
}

type Chat struct {
	ChatSummary
	Messages []models.ChatMessage `json:"messages"`
}
