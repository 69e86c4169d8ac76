package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/admin"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admin.AdminController) {
	router.With(middlewares.Authenticate).Get("/doctors/unverified", adminController.ListUnverifiedDoctors)
	router.With(middlewares.Authenticate).Patch("/doctors/{doctorID}/verify", adminController.VerifyDoctor)
	router.With(middlewares.Authenticate).Get("/dashboard", adminController.DashboardCounts)
}
