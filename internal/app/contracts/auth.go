package contracts

import (
	"context"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error)
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionData string) error
}
