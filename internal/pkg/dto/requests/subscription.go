package requests

type CreateCheckoutSession struct {
	Plan         string `json:"plan" validate:"required,oneof=standard premium"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

type PaymentWebhook struct {
	CheckoutSessionID string `json:"checkout_session_id" validate:"required"`
	Status            string `json:"status" validate:"required,oneof=paid failed expired"`
}
