package prescriptions

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

type PrescriptionController struct {
	PrescriptionUsecase contracts.PrescriptionUsecase
}

func NewPrescriptionController(prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	return &PrescriptionController{
		PrescriptionUsecase: prescriptionUsecase,
	}
}

func (ctrl *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreatePrescription)
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

	response, err := ctrl.PrescriptionUsecase.CreatePrescription(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePrescriptionSuccessMessage, response)
}

func (ctrl *PrescriptionController) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	params := &requests.QueryParams{
		Page:     page,
		PageSize: pageSize,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescriptionList, total, err := ctrl.PrescriptionUsecase.FindAll(ctx, sessionData, params)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, params.Page, params.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListPrescriptionsSuccessMessage, pagination, prescriptionList)
}

func (ctrl *PrescriptionController) GetPrescription(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	prescriptionID := chi.URLParam(r, "prescriptionID")
	if prescriptionID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "prescriptionID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.FindByID(ctx, sessionData, prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionSuccessMessage, response)
}
