package bookings

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

type BookingController struct {
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreateBooking)
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

	response, err := ctrl.BookingUsecase.CreateBooking(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBookingSuccessMessage, response)
}

func (ctrl *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
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
		Status:   query.Get("status"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookingList, total, err := ctrl.BookingUsecase.FindAll(ctx, sessionData, params)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, params.Page, params.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListBookingsSuccessMessage, pagination, bookingList)
}

func (ctrl *BookingController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "bookingID"))
		return
	}

	request := new(requests.UpdateBookingStatus)
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

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.UpdateBookingStatus(ctx, sessionData, bookingID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBookingSuccessMessage, response)
}
