package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Prescription, int, error)
}

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, sessionData string, request *requests.CreatePrescription) (*responses.Prescription, error)
	FindAll(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Prescription, int, error)
	FindByID(ctx context.Context, sessionData, prescriptionID string) (*responses.Prescription, error)
}
