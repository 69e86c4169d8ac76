package responses

type Blog struct {
	ID                 string   `json:"id"`
	AuthorDoctorID     string   `json:"author_doctor_id"`
	AuthorName         string   `json:"author_name"`
	Title              string   `json:"title"`
	Body               string   `json:"body,omitempty"`
	Category           string   `json:"category,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	VerificationStatus string   `json:"verification_status"`
	Priority           int      `json:"priority"`
	CreatedAt          string   `json:"created_at"`
}
