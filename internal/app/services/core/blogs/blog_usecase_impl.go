package blogs

import (
	"context"
	"fmt"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"medxbay-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type blogUsecase struct {
	BlogRepository      contracts.BlogRepository
	DoctorRepository    contracts.DoctorRepository
	SessionService      contracts.SessionService
	NotificationService contracts.NotificationService
	Log                 *zap.Logger
}

var (
	blogUsecaseInstance contracts.BlogUsecase
	onceBlogUsecase     sync.Once
)

func NewBlogUsecase(
	blogRepository contracts.BlogRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.BlogUsecase {
	onceBlogUsecase.Do(func() {
		blogUsecaseInstance = &blogUsecase{
			BlogRepository:      blogRepository,
			DoctorRepository:    doctorRepository,
			SessionService:      sessionService,
			NotificationService: notificationService,
			Log:                 logger,
		}
	})
	return blogUsecaseInstance
}

func (uc *blogUsecase) CreateBlog(ctx context.Context, sessionData string, request *requests.CreateBlog) (*responses.Blog, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	blog := &models.Blog{
		AuthorDoctorID:     doctor.ID,
		AuthorName:         doctor.Name,
		Title:              request.Title,
		Body:               request.Body,
		Category:           request.Category,
		Tags:               request.Tags,
		VerificationStatus: constvars.BlogVerificationPending,
	}
	blogID, err := uc.BlogRepository.CreateBlog(ctx, blog)
	if err != nil {
		return nil, err
	}
	blog.ID = blogID

	return buildBlogResponse(blog, true), nil
}

func (uc *blogUsecase) UpdateBlog(ctx context.Context, sessionData, blogID string, request *requests.UpdateBlog) (*responses.Blog, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	blog, err := uc.BlogRepository.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, exceptions.ErrBlogNotExist(nil)
	}
	if blog.AuthorDoctorID != session.DoctorID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	if request.Title != "" {
		blog.Title = request.Title
	}
	if request.Body != "" {
		blog.Body = request.Body
	}
	if request.Category != "" {
		blog.Category = request.Category
	}
	if request.Tags != nil {
		blog.Tags = request.Tags
	}
	// Edits go back through moderation.
	blog.VerificationStatus = constvars.BlogVerificationPending

	if err := uc.BlogRepository.UpdateBlog(ctx, blog); err != nil {
		return nil, err
	}
	return buildBlogResponse(blog, true), nil
}

func (uc *blogUsecase) ListOwn(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Blog, int, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, 0, exceptions.ErrRoleNotAllowed(nil)
	}

	normalizePage(params)
	blogList, total, err := uc.BlogRepository.FindByAuthor(ctx, session.DoctorID, params)
	if err != nil {
		return nil, 0, err
	}
	return buildBlogList(blogList, false), total, nil
}

func (uc *blogUsecase) ListPublic(ctx context.Context, params *requests.QueryParams) ([]responses.Blog, int, error) {
	normalizePage(params)
	blogList, total, err := uc.BlogRepository.FindVerified(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return buildBlogList(blogList, false), total, nil
}

func (uc *blogUsecase) GetPublic(ctx context.Context, blogID string) (*responses.Blog, error) {
	blog, err := uc.BlogRepository.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil || blog.VerificationStatus != constvars.BlogVerificationVerified {
		return nil, exceptions.ErrBlogNotExist(nil)
	}
	return buildBlogResponse(blog, true), nil
}

func (uc *blogUsecase) ListPending(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Blog, int, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if !session.IsAdmin() {
		return nil, 0, exceptions.ErrRoleNotAllowed(nil)
	}

	normalizePage(params)
	blogList, total, err := uc.BlogRepository.FindPending(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return buildBlogList(blogList, true), total, nil
}

func (uc *blogUsecase) Moderate(ctx context.Context, sessionData, blogID string, request *requests.ModerateBlog) (*responses.Blog, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	blog, err := uc.BlogRepository.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, exceptions.ErrBlogNotExist(nil)
	}

	blog.VerificationStatus = request.Status
	if request.Status == constvars.BlogVerificationVerified {
		blog.Priority = request.Priority
	}
	if err := uc.BlogRepository.UpdateBlog(ctx, blog); err != nil {
		return nil, err
	}

	uc.notifyAuthor(ctx, blog)
	return buildBlogResponse(blog, true), nil
}

func (uc *blogUsecase) notifyAuthor(ctx context.Context, blog *models.Blog) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, blog.AuthorDoctorID)
	if err != nil || doctor == nil {
		return
	}

	message := fmt.Sprintf("Your blog post %q has been published", blog.Title)
	if blog.VerificationStatus == constvars.BlogVerificationRejected {
		message = fmt.Sprintf("Your blog post %q was rejected", blog.Title)
	}
	if err := uc.NotificationService.Notify(ctx, doctor.UserID, constvars.NotificationTypeVerification, message); err != nil {
		uc.Log.Warn("blogUsecase.notifyAuthor failed to create notification",
			zap.String(constvars.LoggingBlogIDKey, blog.ID),
			zap.Error(err),
		)
	}
}

func normalizePage(params *requests.QueryParams) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = constvars.AppDefaultPageSize
	}
	if params.PageSize > constvars.AppMaxPageSize {
		params.PageSize = constvars.AppMaxPageSize
	}
}

// buildBlogResponse omits the body in list contexts to keep payloads small.
func buildBlogResponse(blog *models.Blog, includeBody bool) *responses.Blog {
	response := &responses.Blog{
		ID:                 blog.ID,
		AuthorDoctorID:     blog.AuthorDoctorID,
		AuthorName:         blog.AuthorName,
		Title:              blog.Title,
		Category:           blog.Category,
		Tags:               blog.Tags,
		VerificationStatus: blog.VerificationStatus,
		Priority:           blog.Priority,
		CreatedAt:          blog.CreatedAt.Format(time.RFC3339),
	}
	if includeBody {
		response.Body = blog.Body
	}
	return response
}

func buildBlogList(blogList []models.Blog, includeBody bool) []responses.Blog {
	result := make([]responses.Blog, 0, len(blogList))
	for i := range blogList {
		result = append(result, *buildBlogResponse(&blogList[i], includeBody))
	}
	return result
}
