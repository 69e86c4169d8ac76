package requests

type VerifyDoctor struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
