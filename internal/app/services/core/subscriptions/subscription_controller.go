package subscriptions

import (
	"context"
	"crypto/subtle"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"medxbay-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type SubscriptionController struct {
	SubscriptionUsecase contracts.SubscriptionUsecase
	WebhookKey          string
}

func NewSubscriptionController(subscriptionUsecase contracts.SubscriptionUsecase, webhookKey string) *SubscriptionController {
	return &SubscriptionController{
		SubscriptionUsecase: subscriptionUsecase,
		WebhookKey:          webhookKey,
	}
}

func (ctrl *SubscriptionController) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.CreateCheckoutSession)
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

	response, err := ctrl.SubscriptionUsecase.CreateCheckoutSession(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCheckoutSuccessMessage, response)
}

func (ctrl *SubscriptionController) GetCurrentSubscription(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubscriptionUsecase.GetCurrentSubscription(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSubscriptionSuccessMessage, response)
}

// PaymentWebhook is called by the payment gateway, not a logged-in user, so it
// authenticates with a shared key header instead of a session.
func (ctrl *SubscriptionController) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(constvars.HeaderXWebhookKey)
	if subtle.ConstantTimeCompare([]byte(key), []byte(ctrl.WebhookKey)) != 1 {
		utils.BuildErrorResponse(w, exceptions.ErrWebhookKeyMismatch(nil))
		return
	}

	request := new(requests.PaymentWebhook)
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

	err = ctrl.SubscriptionUsecase.HandlePaymentWebhook(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookProcessedSuccessMessage, nil)
}
