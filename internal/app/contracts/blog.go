package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
)

type BlogRepository interface {
	CreateBlog(ctx context.Context, blog *models.Blog) (string, error)
	FindByID(ctx context.Context, blogID string) (*models.Blog, error)
	FindVerified(ctx context.Context, params *requests.QueryParams) ([]models.Blog, int, error)
	FindByAuthor(ctx context.Context, doctorID string, params *requests.QueryParams) ([]models.Blog, int, error)
	FindPending(ctx context.Context, params *requests.QueryParams) ([]models.Blog, int, error)
	UpdateBlog(ctx context.Context, blog *models.Blog) error
	CountPending(ctx context.Context) (int64, error)
}

type BlogUsecase interface {
	CreateBlog(ctx context.Context, sessionData string, request *requests.CreateBlog) (*responses.Blog, error)
	UpdateBlog(ctx context.Context, sessionData, blogID string, request *requests.UpdateBlog) (*responses.Blog, error)
	ListOwn(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Blog, int, error)
	ListPublic(ctx context.Context, params *requests.QueryParams) ([]responses.Blog, int, error)
	GetPublic(ctx context.Context, blogID string) (*responses.Blog, error)
	ListPending(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Blog, int, error)
	Moderate(ctx context.Context, sessionData, blogID string, request *requests.ModerateBlog) (*responses.Blog, error)
}
