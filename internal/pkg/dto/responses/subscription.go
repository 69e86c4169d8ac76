package responses

type CheckoutSession struct {
	SubscriptionID string  `json:"subscription_id"`
	PaymentLink    string  `json:"payment_link"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
}

type Subscription struct {
	ID           string  `json:"id"`
	Plan         string  `json:"plan"`
	BillingCycle string  `json:"billing_cycle"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	ExpiresAt    string  `json:"expires_at,omitempty"`
}
