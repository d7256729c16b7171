package responses

type RegisterUser struct {
	UserID string `json:"userId"`
}

type LoginUser struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type UserProfile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Organization string `json:"organization,omitempty"`
	IsActive     bool   `json:"isActive"`
}
