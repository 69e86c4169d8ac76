package subscriptions

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSubscriptionRepository struct {
	subscription *models.Subscription
	updates      int
}

func (f *fakeSubscriptionRepository) CreateSubscription(ctx context.Context, subscription *models.Subscription) (string, error) {
	return "sub-1", nil
}

func (f *fakeSubscriptionRepository) FindByID(ctx context.Context, subscriptionID string) (*models.Subscription, error) {
	return f.subscription, nil
}

func (f *fakeSubscriptionRepository) FindByCheckoutSessionID(ctx context.Context, checkoutSessionID string) (*models.Subscription, error) {
	return f.subscription, nil
}

func (f *fakeSubscriptionRepository) FindActiveByDoctorID(ctx context.Context, doctorID string) (*models.Subscription, error) {
	return f.subscription, nil
}

func (f *fakeSubscriptionRepository) UpdateSubscription(ctx context.Context, subscription *models.Subscription) error {
	f.updates++
	f.subscription = subscription
	return nil
}

func (f *fakeSubscriptionRepository) FindActiveExpiredBefore(ctx context.Context, cutoff time.Time) ([]models.Subscription, error) {
	return nil, nil
}

func TestHandlePaymentWebhook(t *testing.T) {
	t.Run("Duplicate Delivery Is Acknowledged Without Effect", func(t *testing.T) {
		repo := &fakeSubscriptionRepository{subscription: &models.Subscription{
			ID:                "sub-1",
			DoctorID:          "doctor-1",
			Plan:              constvars.SubscriptionTierStandard,
			Status:            constvars.SubscriptionStatusActive,
			CheckoutSessionID: "cs-1",
		}}
		usecase := &subscriptionUsecase{SubscriptionRepository: repo, Log: zap.NewNop()}

		err := usecase.HandlePaymentWebhook(context.Background(), &requests.PaymentWebhook{
			CheckoutSessionID: "cs-1",
			Status:            "paid",
		})

		assert.NoError(t, err, "redelivery of a settled webhook must succeed")
		assert.Zero(t, repo.updates, "a settled subscription must not be rewritten")
		assert.Equal(t, constvars.SubscriptionStatusActive, repo.subscription.Status)
	})

	t.Run("Delivery For Expired Subscription Is Ignored", func(t *testing.T) {
		repo := &fakeSubscriptionRepository{subscription: &models.Subscription{
			ID:                "sub-2",
			DoctorID:          "doctor-1",
			Plan:              constvars.SubscriptionTierPremium,
			Status:            constvars.SubscriptionStatusExpired,
			CheckoutSessionID: "cs-2",
		}}
		usecase := &subscriptionUsecase{SubscriptionRepository: repo, Log: zap.NewNop()}

		err := usecase.HandlePaymentWebhook(context.Background(), &requests.PaymentWebhook{
			CheckoutSessionID: "cs-2",
			Status:            "paid",
		})

		assert.NoError(t, err)
		assert.Zero(t, repo.updates)
	})

	t.Run("Failed Payment Expires Pending Subscription", func(t *testing.T) {
		repo := &fakeSubscriptionRepository{subscription: &models.Subscription{
			ID:                "sub-3",
			DoctorID:          "doctor-1",
			Plan:              constvars.SubscriptionTierStandard,
			Status:            constvars.SubscriptionStatusPending,
			CheckoutSessionID: "cs-3",
		}}
		usecase := &subscriptionUsecase{SubscriptionRepository: repo, Log: zap.NewNop()}

		err := usecase.HandlePaymentWebhook(context.Background(), &requests.PaymentWebhook{
			CheckoutSessionID: "cs-3",
			Status:            "failed",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, repo.updates)
		assert.Equal(t, constvars.SubscriptionStatusExpired, repo.subscription.Status)
	})
}
