package requests

type RegisterUser struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,password"`
	FullName     string `json:"full_name" validate:"required,max=200"`
	Role         string `json:"role" validate:"required,role"`
	PhoneNumber  string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Organization string `json:"organization,omitempty" validate:"omitempty,max=200"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfile struct {
	FullName     string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	PhoneNumber  string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Organization string `json:"organization,omitempty" validate:"omitempty,max=200"`
}
