package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/subscriptions"

	"github.com/go-chi/chi/v5"
)

func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *subscriptions.SubscriptionController) {
	router.With(middlewares.Authenticate).Post("/checkout", subscriptionController.CreateCheckoutSession)
	router.With(middlewares.Authenticate).Get("/current", subscriptionController.GetCurrentSubscription)

	// The payment gateway authenticates with a shared key, not a session.
	router.Post("/webhook", subscriptionController.PaymentWebhook)
}
