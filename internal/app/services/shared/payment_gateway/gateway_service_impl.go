package payment_gateway

import (
	"bytes"
	"context"
	"medxbay-service/internal/app/config"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type gatewayService struct {
	BaseUrl    string
	APIKey     string
	httpClient *http.Client
}

type checkoutSessionRequest struct {
	ReferenceID string  `json:"reference_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CustomerID  string  `json:"customer_id"`
}

type checkoutSessionResponse struct {
	ID          string `json:"id"`
	PaymentLink string `json:"payment_link"`
}

func NewGatewayService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &gatewayService{
		BaseUrl:    internalConfig.Payment.BaseUrl,
		APIKey:     internalConfig.Payment.APIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *gatewayService) CreateCheckoutSession(ctx context.Context, request *contracts.CheckoutRequest) (*contracts.CheckoutResponse, error) {
	payload := checkoutSessionRequest{
		ReferenceID: request.ReferenceID,
		Description: request.Description,
		Amount:      request.Amount,
		Currency:    request.Currency,
		CustomerID:  request.CustomerID,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/checkout-sessions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPaymentGatewayCheckout)
	}

	sessionResponse := new(checkoutSessionResponse)
	err = json.NewDecoder(resp.Body).Decode(sessionResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeHTTPResponse(err, "payment gateway")
	}

	return &contracts.CheckoutResponse{
		CheckoutSessionID: sessionResponse.ID,
		PaymentLink:       sessionResponse.PaymentLink,
	}, nil
}
