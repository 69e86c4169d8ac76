package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/prescriptions"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.With(middlewares.Authenticate).Post("/", prescriptionController.CreatePrescription)
	router.With(middlewares.Authenticate).Get("/", prescriptionController.ListPrescriptions)
	router.With(middlewares.Authenticate).Get("/{prescriptionID}", prescriptionController.GetPrescription)
}
