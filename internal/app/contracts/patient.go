package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	CountPatients(ctx context.Context) (int64, error)
}
