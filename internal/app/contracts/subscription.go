package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"time"
)

type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, subscription *models.Subscription) (string, error)
	FindByID(ctx context.Context, subscriptionID string) (*models.Subscription, error)
	FindByCheckoutSessionID(ctx context.Context, checkoutSessionID string) (*models.Subscription, error)
	FindActiveByDoctorID(ctx context.Context, doctorID string) (*models.Subscription, error)
	UpdateSubscription(ctx context.Context, subscription *models.Subscription) error
	FindActiveExpiredBefore(ctx context.Context, cutoff time.Time) ([]models.Subscription, error)
}

type SubscriptionUsecase interface {
	CreateCheckoutSession(ctx context.Context, sessionData string, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error)
	GetCurrentSubscription(ctx context.Context, sessionData string) (*responses.Subscription, error)
	HandlePaymentWebhook(ctx context.Context, request *requests.PaymentWebhook) error
	// ExpireOverdue demotes doctors whose active subscription lapsed; used by the worker.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}
