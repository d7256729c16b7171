package models

import "time"

// Service is one entry of the mental-health service directory, classified by
// its DESDE-LTC MTC and BSIC codes.
type Service struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	MTCCode  string `json:"mtcCode" bson:"mtcCode"`
	BSICCode string `json:"bsicCode" bson:"bsicCode"`

	PhoneNumber string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	Website     string `json:"website,omitempty" bson:"website,omitempty"`

	Address    string   `json:"address,omitempty" bson:"address,omitempty"`
	City       string   `json:"city" bson:"city"`
	Province   string   `json:"province" bson:"province"`
	PostalCode string   `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`

	BedCapacity       *int `json:"bedCapacity,omitempty" bson:"bedCapacity,omitempty"`
	StaffCount        *int `json:"staffCount,omitempty" bson:"staffCount,omitempty"`
	PsychiatristCount int  `json:"psychiatristCount" bson:"psychiatristCount"`
	PsychologistCount int  `json:"psychologistCount" bson:"psychologistCount"`
	NurseCount        int  `json:"nurseCount" bson:"nurseCount"`
	SocialWorkerCount int  `json:"socialWorkerCount" bson:"socialWorkerCount"`

	OperatingHours   string `json:"operatingHours,omitempty" bson:"operatingHours,omitempty"`
	Is247            bool   `json:"is247" bson:"is247"`
	AcceptsEmergency bool   `json:"acceptsEmergency" bson:"acceptsEmergency"`

	AcceptsBPJS             bool   `json:"acceptsBpjs" bson:"acceptsBpjs"`
	AcceptsPrivateInsurance bool   `json:"acceptsPrivateInsurance" bson:"acceptsPrivateInsurance"`
	FundingSources          string `json:"fundingSources,omitempty" bson:"fundingSources,omitempty"`

	IsVerified bool       `json:"isVerified" bson:"isVerified"`
	IsActive   bool       `json:"isActive" bson:"isActive"`
	CreatedBy  string     `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	VerifiedBy string     `json:"verifiedBy,omitempty" bson:"verifiedBy,omitempty"`
	VerifiedAt *time.Time `json:"verifiedAt,omitempty" bson:"verifiedAt,omitempty"`
	TimeModel  `bson:",inline"`
}

// TotalProfessionalStaff sums the professional staff categories.
func (s *Service) TotalProfessionalStaff() int {
	return s.PsychiatristCount + s.PsychologistCount + s.NurseCount + s.SocialWorkerCount
}
