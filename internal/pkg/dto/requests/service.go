package requests

type CreateService struct {
	Name        string `json:"name" validate:"required,max=300"`
	Description string `json:"description,omitempty"`
	MTCCode     string `json:"mtc_code" validate:"required,max=20"`
	BSICCode    string `json:"bsic_code" validate:"required,max=10"`

	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`

	Address    string   `json:"address,omitempty"`
	City       string   `json:"city" validate:"required,max=100"`
	Province   string   `json:"province" validate:"required,max=100"`
	PostalCode string   `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	BedCapacity       *int `json:"bed_capacity,omitempty" validate:"omitempty,min=0"`
	StaffCount        *int `json:"staff_count,omitempty" validate:"omitempty,min=0"`
	PsychiatristCount int  `json:"psychiatrist_count" validate:"min=0"`
	PsychologistCount int  `json:"psychologist_count" validate:"min=0"`
	NurseCount        int  `json:"nurse_count" validate:"min=0"`
	SocialWorkerCount int  `json:"social_worker_count" validate:"min=0"`

	OperatingHours   string `json:"operating_hours,omitempty"`
	Is247            bool   `json:"is_24_7"`
	AcceptsEmergency bool   `json:"accepts_emergency"`

	AcceptsBPJS             bool   `json:"accepts_bpjs"`
	AcceptsPrivateInsurance bool   `json:"accepts_private_insurance"`
	FundingSources          string `json:"funding_sources,omitempty"`
}

type UpdateService struct {
	CreateService
	IsActive *bool `json:"is_active,omitempty"`
}

type ListServices struct {
	Pagination
	Search   string
	City     string
	MTCCode  string
	Verified *bool
}
