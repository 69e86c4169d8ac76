package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register/patient", authController.RegisterPatient)
	router.Post("/register/doctor", authController.RegisterDoctor)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
