package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	// Search and public profiles are reachable without a session.
	router.Get("/", doctorController.Search)

	router.With(middlewares.Authenticate).Get("/profile", doctorController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", doctorController.UpdateProfile)
	router.With(middlewares.Authenticate).Post("/profile/picture", doctorController.UploadProfilePicture)
	router.With(middlewares.Authenticate).Get("/slots", doctorController.ListTimeSlots)
	router.With(middlewares.Authenticate).Post("/slots", doctorController.AddTimeSlot)
	router.With(middlewares.Authenticate).Delete("/slots", doctorController.DeleteTimeSlot)

	// Profile visibility depends on the caller; admins can open unverified
	// profiles, so the session is resolved when a token is present.
	router.With(middlewares.AuthenticateOptional).Get("/{doctorID}", doctorController.GetPublicProfile)
}
