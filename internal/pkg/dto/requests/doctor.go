package requests

type UpdateDoctorProfile struct {
	Name              string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Gender            string   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Title             string   `json:"title,omitempty" validate:"omitempty,max=50"`
	AboutMe           string   `json:"about_me,omitempty" validate:"omitempty,max=2000"`
	Specialties       []string `json:"specialties,omitempty" validate:"omitempty,dive,min=2,max=60"`
	Conditions        []string `json:"conditions,omitempty" validate:"omitempty,dive,min=2,max=60"`
	Languages         []string `json:"languages,omitempty" validate:"omitempty,dive,min=2,max=40"`
	ConsultationTypes []string `json:"consultation_types,omitempty" validate:"omitempty,dive,oneof=video in-person"`
	ConsultationFee   float64  `json:"consultation_fee,omitempty" validate:"omitempty,gte=0"`
	Currency          string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	ClinicName        string   `json:"clinic_name,omitempty" validate:"omitempty,max=120"`
	ClinicAddress     string   `json:"clinic_address,omitempty" validate:"omitempty,max=200"`
	City              string   `json:"city,omitempty" validate:"omitempty,max=80"`
	State             string   `json:"state,omitempty" validate:"omitempty,max=80"`
	Country           string   `json:"country,omitempty" validate:"omitempty,max=80"`
}

type UploadProfilePicture struct {
	// Base64-encoded image with data URI prefix.
	Picture string `json:"picture" validate:"required"`
}

type AddTimeSlot struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type DeleteTimeSlot struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
}

type SearchDoctors struct {
	What             string `json:"what"`
	Where            string `json:"where"`
	Specialty        string `json:"specialty"`
	Language         string `json:"language"`
	Gender           string `json:"gender"`
	ConsultationType string `json:"consultation_type"`
	Country          string `json:"country"`
	State            string `json:"state"`
	City             string `json:"city"`
	AvailableNow     bool   `json:"available_now"`
	Page             int    `json:"page"`
	PageSize         int    `json:"page_size"`
}
