package models

import (
	"medxbay-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	DoctorID  string    `json:"doctorId,omitempty"`
	PatientID string    `json:"patientId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.MedxbayRolePatient
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.MedxbayRoleDoctor
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.MedxbayRoleAdmin
}
