package contracts

import (
	"context"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	ListUnverifiedDoctors(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.DoctorProfile, int, error)
	VerifyDoctor(ctx context.Context, sessionData, doctorID string, request *requests.VerifyDoctor) error
	DashboardCounts(ctx context.Context, sessionData string) (*responses.DashboardCounts, error)
}
