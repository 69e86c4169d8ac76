package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authenticate).Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authenticate).Get("/", bookingController.ListBookings)
	router.With(middlewares.Authenticate).Patch("/{bookingID}/status", bookingController.UpdateBookingStatus)
}
