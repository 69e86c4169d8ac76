package requests

type RegisterPatient struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Username       string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
}

type RegisterDoctor struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Username       string   `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=8"`
	RetypePassword string   `json:"retype_password" validate:"required,eqfield=Password"`
	Title          string   `json:"title,omitempty" validate:"omitempty,max=50"`
	Specialties    []string `json:"specialties,omitempty" validate:"omitempty,dive,min=2,max=60"`
}

type Login struct {
	// Email or username; the usecase resolves either.
	Identifier string `json:"identifier" validate:"required,min=3"`
	Password   string `json:"password" validate:"required"`
}
