package contracts

import "context"

type CheckoutRequest struct {
	ReferenceID string
	Description string
	Amount      float64
	Currency    string
	CustomerID  string
}

type CheckoutResponse struct {
	CheckoutSessionID string
	PaymentLink       string
}

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, request *CheckoutRequest) (*CheckoutResponse, error)
}
