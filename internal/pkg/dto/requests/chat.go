package requests

type SendChatMessage struct {
	// Required for a patient starting a conversation; ignored when chat_id set.
	DoctorID string `json:"doctor_id,omitempty"`
	ChatID   string `json:"chat_id,omitempty"`
	Text     string `json:"text" validate:"required,min=1,max=2000"`
}
