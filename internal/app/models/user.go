package models

import "time"

type User struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Email        string `json:"email" bson:"email"`
	Username     string `json:"username" bson:"username"`
	Password     string `json:"-" bson:"password"`
	FullName     string `json:"fullName" bson:"fullName"`
	Role         string `json:"role" bson:"role"`
	PhoneNumber  string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Organization string `json:"organization,omitempty" bson:"organization,omitempty"`
	IsActive     bool   `json:"isActive" bson:"isActive"`
	TimeModel    `bson:",inline"`
}

type UserActivityLog struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId" bson:"userId"`
	Action      string    `json:"action" bson:"action"`
	ModelName   string    `json:"modelName,omitempty" bson:"modelName,omitempty"`
	ObjectID    string    `json:"objectId,omitempty" bson:"objectId,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	IPAddress   string    `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// Activity log actions.
const (
	ActivityLogin  = "LOGIN"
	ActivityLogout = "LOGOUT"
	ActivityCreate = "CREATE"
	ActivityUpdate = "UPDATE"
	ActivityDelete = "DELETE"
)
