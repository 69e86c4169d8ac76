package blogs

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"medxbay-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type BlogController struct {
	BlogUsecase contracts.BlogUsecase
}

func NewBlogController(blogUsecase contracts.BlogUsecase) *BlogController {
	return &BlogController{
		BlogUsecase: blogUsecase,
	}
}

func (ctrl *BlogController) CreateBlog(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreateBlog)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateBlogRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.CreateBlog(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBlogSuccessMessage, response)
}

func (ctrl *BlogController) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	blogID := chi.URLParam(r, "blogID")
	if blogID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "blogID"))
		return
	}

	request := new(requests.UpdateBlog)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.UpdateBlog(ctx, sessionData, blogID, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBlogSuccessMessage, response)
}

func (ctrl *BlogController) ListOwn(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	params := parseBlogQuery(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	blogList, total, err := ctrl.BlogUsecase.ListOwn(ctx, sessionData, params)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, params.Page, params.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListBlogsSuccessMessage, pagination, blogList)
}

func (ctrl *BlogController) ListPublic(w http.ResponseWriter, r *http.Request) {
	params := parseBlogQuery(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	blogList, total, err := ctrl.BlogUsecase.ListPublic(ctx, params)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, params.Page, params.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListBlogsSuccessMessage, pagination, blogList)
}

func (ctrl *BlogController) GetPublic(w http.ResponseWriter, r *http.Request) {
	blogID := chi.URLParam(r, "blogID")
	if blogID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "blogID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.GetPublic(ctx, blogID)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBlogSuccessMessage, response)
}

func (ctrl *BlogController) ListPending(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	params := parseBlogQuery(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	blogList, total, err := ctrl.BlogUsecase.ListPending(ctx, sessionData, params)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, params.Page, params.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListBlogsSuccessMessage, pagination, blogList)
}

func (ctrl *BlogController) Moderate(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	blogID := chi.URLParam(r, "blogID")
	if blogID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "blogID"))
		return
	}

	request := new(requests.ModerateBlog)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.Moderate(ctx, sessionData, blogID, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModerateBlogSuccessMessage, response)
}

func parseBlogQuery(r *http.Request) *requests.QueryParams {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	return &requests.QueryParams{
		Page:     page,
		PageSize: pageSize,
		Category: query.Get("category"),
	}
}
