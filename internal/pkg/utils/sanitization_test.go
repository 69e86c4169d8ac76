package utils

import (
	"medxbay-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterPatientRequest(t *testing.T) {
	t.Run("Email And Username Lowercased", func(t *testing.T) {
		request := &requests.RegisterPatient{
			Name:     "  Jane Doe  ",
			Username: "  JaneDoe  ",
			Email:    "  JANE@EXAMPLE.COM  ",
		}

		SanitizeRegisterPatientRequest(request)

		assert.Equal(t, "Jane Doe", request.Name)
		assert.Equal(t, "janedoe", request.Username)
		assert.Equal(t, "jane@example.com", request.Email)
	})
}

func TestSanitizeSearchDoctorsRequest(t *testing.T) {
	t.Run("Trims And Normalizes", func(t *testing.T) {
		request := &requests.SearchDoctors{
			What:             "  cardiology  ",
			Where:            "  London  ",
			Gender:           "  Female  ",
			ConsultationType: "  VIDEO  ",
		}

		SanitizeSearchDoctorsRequest(request)

		assert.Equal(t, "cardiology", request.What)
		assert.Equal(t, "London", request.Where)
		assert.Equal(t, "female", request.Gender)
		assert.Equal(t, "video", request.ConsultationType)
	})
}

func TestSanitizeVerifyDoctorRequest(t *testing.T) {
	request := &requests.VerifyDoctor{Reason: "  incomplete license details  "}

	SanitizeVerifyDoctorRequest(request)

	assert.Equal(t, "incomplete license details", request.Reason)
}
