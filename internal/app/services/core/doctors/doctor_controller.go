package doctors

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

type DoctorController struct {
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetProfileBySession(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UpdateDoctorProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateDoctorProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UpdateProfileBySession(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, response)
}

func (ctrl *DoctorController) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.UploadProfilePicture)
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

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UploadProfilePicture(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadPictureSuccessMessage, response)
}

func (ctrl *DoctorController) AddTimeSlot(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.AddTimeSlot)
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

	slots, err := ctrl.DoctorUsecase.AddTimeSlot(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddTimeSlotSuccessMessage, slots)
}

func (ctrl *DoctorController) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	slots, err := ctrl.DoctorUsecase.ListTimeSlots(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListTimeSlotsSuccessMessage, slots)
}

func (ctrl *DoctorController) DeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.DeleteTimeSlot)
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

	slots, err := ctrl.DoctorUsecase.DeleteTimeSlot(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTimeSlotSuccessMessage, slots)
}

func (ctrl *DoctorController) Search(w http.ResponseWriter, r *http.Request) {
	request := parseSearchRequest(r)
	utils.SanitizeSearchDoctorsRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, total, err := ctrl.DoctorUsecase.Search(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SearchDoctorsSuccessMessage, pagination, doctors)
}

func (ctrl *DoctorController) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	if doctorID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "doctorID"))
		return
	}

	// Anonymous callers have no session in context; the usecase treats an
	// empty string as unauthenticated.
	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetPublicProfile(ctx, sessionData, doctorID)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, response)
}

func parseSearchRequest(r *http.Request) *requests.SearchDoctors {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	availableNow, _ := strconv.ParseBool(query.Get("available_now"))

	return &requests.SearchDoctors{
		What:             query.Get("what"),
		Where:            query.Get("where"),
		Specialty:        query.Get("specialty"),
		Language:         query.Get("language"),
		Gender:           query.Get("gender"),
		ConsultationType: query.Get("consultation_type"),
		Country:          query.Get("country"),
		State:            query.Get("state"),
		City:             query.Get("city"),
		AvailableNow:     availableNow,
		Page:             page,
		PageSize:         pageSize,
	}
}
