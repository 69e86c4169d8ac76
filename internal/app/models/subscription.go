package models

import "time"

type Subscription struct {
	ID                string     `bson:"_id,omitempty"`
	DoctorID          string     `bson:"doctorId"`
	Plan              string     `bson:"plan"`
	BillingCycle      string     `bson:"billingCycle"`
	Status            string     `bson:"status"`
	Amount            float64    `bson:"amount"`
	Currency          string     `bson:"currency"`
	CheckoutSessionID string     `bson:"checkoutSessionId,omitempty"`
	PaymentLink       string     `bson:"paymentLink,omitempty"`
	ActivatedAt       *time.Time `bson:"activatedAt,omitempty"`
	ExpiresAt         *time.Time `bson:"expiresAt,omitempty"`
	TimeModel         `bson:",inline"`
}
