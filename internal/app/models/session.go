package models

// Session is the payload stored in redis per login, serialized to JSON and
// keyed by a generated session id carried inside the JWT.
type Session struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}
