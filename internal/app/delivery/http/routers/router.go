package routers

import (
	"fmt"
	"medxbay-service/internal/app/config"
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/admin"
	"medxbay-service/internal/app/services/core/auth"
	"medxbay-service/internal/app/services/core/blogs"
	"medxbay-service/internal/app/services/core/bookings"
	"medxbay-service/internal/app/services/core/chats"
	"medxbay-service/internal/app/services/core/doctors"
	"medxbay-service/internal/app/services/core/notifications"
	"medxbay-service/internal/app/services/core/prescriptions"
	"medxbay-service/internal/app/services/core/subscriptions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	doctorController *doctors.DoctorController,
	bookingController *bookings.BookingController,
	chatController *chats.ChatController,
	prescriptionController *prescriptions.PrescriptionController,
	subscriptionController *subscriptions.SubscriptionController,
	blogController *blogs.BlogController,
	notificationController *notifications.NotificationController,
	adminController *admin.AdminController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/chats", func(r chi.Router) {
				attachChatRoutes(r, middlewares, chatController)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, prescriptionController)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				attachSubscriptionRoutes(r, middlewares, subscriptionController)
			})

			r.Route("/blogs", func(r chi.Router) {
				attachBlogRoutes(r, middlewares, blogController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, adminController)
			})
		})
	})
}
