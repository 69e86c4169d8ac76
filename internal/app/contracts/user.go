package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, identifier string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}
