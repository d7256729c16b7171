package requests

// Survey verify actions.
const (
	VerifyActionVerify = "verify"
	VerifyActionReject = "reject"
)

type CreateSurvey struct {
	TemplateID        string  `json:"template_id" validate:"required"`
	ServiceID         string  `json:"service_id" validate:"required"`
	SurveyDate        string  `json:"survey_date" validate:"required,datetime=2006-01-02"`
	SurveyPeriodStart string  `json:"survey_period_start" validate:"required,datetime=2006-01-02"`
	SurveyPeriodEnd   string  `json:"survey_period_end" validate:"required,datetime=2006-01-02"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	LocationAccuracy  *float64 `json:"location_accuracy,omitempty"`
	SurveyorNotes     string  `json:"surveyor_notes,omitempty"`

	// Answers keyed by question code; values classified by the answer model.
	Answers map[string]interface{} `json:"answers,omitempty"`
}

type SaveSurveyProgress struct {
	Answers          map[string]interface{} `json:"answers" validate:"required"`
	Latitude         *float64               `json:"latitude,omitempty"`
	Longitude        *float64               `json:"longitude,omitempty"`
	LocationAccuracy *float64               `json:"location_accuracy,omitempty"`
	SurveyorNotes    string                 `json:"surveyor_notes,omitempty"`
}

type SubmitSurvey struct {
	AssignedVerifierID string `json:"assigned_verifier_id,omitempty"`
}

type VerifySurvey struct {
	Action          string `json:"action" validate:"required,oneof=verify reject"`
	Notes           string `json:"notes,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

type ResubmitSurvey struct {
	Answers map[string]interface{} `json:"answers,omitempty"`
}

type ListSurveys struct {
	Pagination
	Status    string
	ServiceID string
	Search    string
}
