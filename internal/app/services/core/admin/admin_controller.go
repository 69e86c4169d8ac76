package admin

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

type AdminController struct {
	AdminUsecase contracts.AdminUsecase
}

func NewAdminController(adminUsecase contracts.AdminUsecase) *AdminController {
	return &AdminController{
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) ListUnverifiedDoctors(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	params := &requests.QueryParams{}
	if page := r.URL.Query().Get("page"); page != "" {
		params.Page, _ = strconv.Atoi(page)
	}
	if pageSize := r.URL.Query().Get("page_size"); pageSize != "" {
		params.PageSize, _ = strconv.Atoi(pageSize)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.AdminUsecase.ListUnverifiedDoctors(ctx, sessionData, params)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, params.Page, params.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListDoctorsAdminSuccessMessage, pagination, response)
}

func (ctrl *AdminController) VerifyDoctor(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	doctorID := chi.URLParam(r, "doctorID")
	if doctorID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "doctorID"))
		return
	}

	request := &requests.VerifyDoctor{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeVerifyDoctorRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AdminUsecase.VerifyDoctor(ctx, sessionData, doctorID, request); err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyDoctorSuccessMessage, nil)
}

func (ctrl *AdminController) DashboardCounts(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AdminUsecase.DashboardCounts(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardCountsSuccessMessage, response)
}
