package responses

import "medxbay-service/internal/app/models"

type DoctorSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Title             string   `json:"title,omitempty"`
	Specialties       []string `json:"specialties,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	ConsultationTypes []string `json:"consultation_types,omitempty"`
	ConsultationFee   float64  `json:"consultation_fee,omitempty"`
	Currency          string   `json:"currency,omitempty"`
	City              string   `json:"city,omitempty"`
	Country           string   `json:"country,omitempty"`
	Rating            float64  `json:"rating,omitempty"`
	ProfilePictureURL string   `json:"profile_picture_url,omitempty"`
	SubscriptionTier  string   `json:"subscription_tier"`
}

type DoctorProfile struct {
	DoctorSummary
	Email      string                `json:"email"`
	Gender     string                `json:"gender,omitempty"`
	AboutMe    string                `json:"about_me,omitempty"`
	Conditions []string              `json:"conditions,omitempty"`
	Clinic     models.ClinicLocation `json:"clinic,omitempty"`
	Verified   bool                  `json:"verified"`
	TimeSlots  []models.TimeSlot     `json:"time_slots,omitempty"`
}

type UploadProfilePicture struct {
	URL string `json:"url"`
}
