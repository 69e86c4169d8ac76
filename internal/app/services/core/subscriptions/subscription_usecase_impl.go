package subscriptions

import (
	"context"
	"fmt"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"medxbay-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type subscriptionUsecase struct {
	SubscriptionRepository contracts.SubscriptionRepository
	DoctorRepository       contracts.DoctorRepository
	SessionService         contracts.SessionService
	PaymentGatewayService  contracts.PaymentGatewayService
	NotificationService    contracts.NotificationService
	Log                    *zap.Logger
}

var (
	subscriptionUsecaseInstance contracts.SubscriptionUsecase
	onceSubscriptionUsecase     sync.Once
)

func NewSubscriptionUsecase(
	subscriptionRepository contracts.SubscriptionRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	paymentGatewayService contracts.PaymentGatewayService,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.SubscriptionUsecase {
	onceSubscriptionUsecase.Do(func() {
		subscriptionUsecaseInstance = &subscriptionUsecase{
			SubscriptionRepository: subscriptionRepository,
			DoctorRepository:       doctorRepository,
			SessionService:         sessionService,
			PaymentGatewayService:  paymentGatewayService,
			NotificationService:    notificationService,
			Log:                    logger,
		}
	})
	return subscriptionUsecaseInstance
}

func (uc *subscriptionUsecase) CreateCheckoutSession(ctx context.Context, sessionData string, request *requests.CreateCheckoutSession) (*responses.CheckoutSession, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	amount, ok := PlanAmount(request.Plan, request.BillingCycle)
	if !ok {
		return nil, exceptions.ErrSubscriptionPlanUnknown(fmt.Errorf("plan %s billing cycle %s", request.Plan, request.BillingCycle))
	}

	subscription := &models.Subscription{
		DoctorID:     doctor.ID,
		Plan:         request.Plan,
		BillingCycle: request.BillingCycle,
		Status:       constvars.SubscriptionStatusPending,
		Amount:       amount,
		Currency:     planCurrency,
	}
	subscriptionID, err := uc.SubscriptionRepository.CreateSubscription(ctx, subscription)
	if err != nil {
		return nil, err
	}
	subscription.ID = subscriptionID

	checkout, err := uc.PaymentGatewayService.CreateCheckoutSession(ctx, &contracts.CheckoutRequest{
		ReferenceID: subscriptionID,
		Description: fmt.Sprintf("MedxBay %s plan, billed %s", request.Plan, request.BillingCycle),
		Amount:      amount,
		Currency:    planCurrency,
		CustomerID:  doctor.ID,
	})
	if err != nil {
		return nil, err
	}

	subscription.CheckoutSessionID = checkout.CheckoutSessionID
	subscription.PaymentLink = checkout.PaymentLink
	if err := uc.SubscriptionRepository.UpdateSubscription(ctx, subscription); err != nil {
		return nil, err
	}

	return &responses.CheckoutSession{
		SubscriptionID: subscriptionID,
		PaymentLink:    checkout.PaymentLink,
		Amount:         amount,
		Currency:       planCurrency,
	}, nil
}

func (uc *subscriptionUsecase) GetCurrentSubscription(ctx context.Context, sessionData string) (*responses.Subscription, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	subscription, err := uc.SubscriptionRepository.FindActiveByDoctorID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, exceptions.ErrSubscriptionNotExist(nil)
	}

	// Expiry is enforced on read too; the cron pass only sweeps stragglers.
	if subscription.ExpiresAt != nil && subscription.ExpiresAt.Before(time.Now()) {
		uc.expireSubscription(ctx, subscription)
		return nil, exceptions.ErrSubscriptionNotExist(nil)
	}

	return buildSubscriptionResponse(subscription), nil
}

func (uc *subscriptionUsecase) HandlePaymentWebhook(ctx context.Context, request *requests.PaymentWebhook) error {
	subscription, err := uc.SubscriptionRepository.FindByCheckoutSessionID(ctx, request.CheckoutSessionID)
	if err != nil {
		return err
	}
	if subscription == nil {
		return exceptions.ErrSubscriptionNotExist(nil)
	}

	// Webhooks can be redelivered; anything past pending is already settled.
	if subscription.Status != constvars.SubscriptionStatusPending {
		uc.Log.Info("subscriptionUsecase.HandlePaymentWebhook duplicate delivery ignored",
			zap.String(constvars.LoggingPlanKey, subscription.Plan),
			zap.String(constvars.LoggingStatusKey, subscription.Status),
		)
		return nil
	}

	if request.Status != "paid" {
		subscription.Status = constvars.SubscriptionStatusExpired
		return uc.SubscriptionRepository.UpdateSubscription(ctx, subscription)
	}

	now := time.Now()
	expiresAt := now.AddDate(0, 1, 0)
	if subscription.BillingCycle == BillingCycleYearly {
		expiresAt = now.AddDate(1, 0, 0)
	}

	subscription.Status = constvars.SubscriptionStatusActive
	subscription.ActivatedAt = &now
	subscription.ExpiresAt = &expiresAt
	if err := uc.SubscriptionRepository.UpdateSubscription(ctx, subscription); err != nil {
		return err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, subscription.DoctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	expiryUnix := expiresAt.Unix()
	doctor.SubscriptionTier = subscription.Plan
	doctor.SubscriptionExpiry = &expiryUnix
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return err
	}

	if err := uc.NotificationService.Notify(ctx, doctor.UserID, constvars.NotificationTypeSubscription,
		fmt.Sprintf("Your %s subscription is active until %s", subscription.Plan, expiresAt.Format("2006-01-02"))); err != nil {
		uc.Log.Warn("subscriptionUsecase.HandlePaymentWebhook failed to create notification",
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *subscriptionUsecase) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := uc.SubscriptionRepository.FindActiveExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range overdue {
		if uc.expireSubscription(ctx, &overdue[i]) {
			expired++
		}
	}
	return expired, nil
}

// expireSubscription flips the subscription to expired and demotes the doctor
// to the free tier. Failures are logged; the next pass retries.
func (uc *subscriptionUsecase) expireSubscription(ctx context.Context, subscription *models.Subscription) bool {
	subscription.Status = constvars.SubscriptionStatusExpired
	if err := uc.SubscriptionRepository.UpdateSubscription(ctx, subscription); err != nil {
		uc.Log.Error("subscriptionUsecase.expireSubscription failed to update subscription",
			zap.String(constvars.LoggingDoctorIDKey, subscription.DoctorID),
			zap.Error(err),
		)
		return false
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, subscription.DoctorID)
	if err != nil || doctor == nil {
		uc.Log.Error("subscriptionUsecase.expireSubscription could not load doctor",
			zap.String(constvars.LoggingDoctorIDKey, subscription.DoctorID),
			zap.Error(err),
		)
		return false
	}

	doctor.SubscriptionTier = constvars.SubscriptionTierFree
	doctor.SubscriptionExpiry = nil
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		uc.Log.Error("subscriptionUsecase.expireSubscription failed to demote doctor",
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return false
	}

	if err := uc.NotificationService.Notify(ctx, doctor.UserID, constvars.NotificationTypeSubscription,
		"Your subscription has expired; your profile is no longer visible in search"); err != nil {
		uc.Log.Warn("subscriptionUsecase.expireSubscription failed to create notification",
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
	}
	return true
}

func buildSubscriptionResponse(subscription *models.Subscription) *responses.Subscription {
	response := &responses.Subscription{
		ID:           subscription.ID,
		Plan:         subscription.Plan,
		BillingCycle: subscription.BillingCycle,
		Status:       subscription.Status,
		Amount:       subscription.Amount,
		Currency:     subscription.Currency,
	}
	if subscription.ExpiresAt != nil {
		response.ExpiresAt = subscription.ExpiresAt.Format(time.RFC3339)
	}
	return response
}
