package models

import (
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"
)

// SurveyResponse is one collected questionnaire for a service, wrapped by the
// verification lifecycle. Answers are keyed by question code and stored raw;
// the questionnaire package classifies them on read.
type SurveyResponse struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	TemplateID string `json:"templateId" bson:"templateId"`
	ServiceID  string `json:"serviceId" bson:"serviceId"`

	SurveyDate        time.Time `json:"surveyDate" bson:"surveyDate"`
	SurveyPeriodStart time.Time `json:"surveyPeriodStart" bson:"surveyPeriodStart"`
	SurveyPeriodEnd   time.Time `json:"surveyPeriodEnd" bson:"surveyPeriodEnd"`

	Latitude         *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	LocationAccuracy *float64 `json:"locationAccuracy,omitempty" bson:"locationAccuracy,omitempty"`

	SurveyorID    string `json:"surveyorId" bson:"surveyorId"`
	SurveyorNotes string `json:"surveyorNotes,omitempty" bson:"surveyorNotes,omitempty"`

	Answers map[string]interface{} `json:"answers" bson:"answers"`

	Status             questionnaire.Status `json:"status" bson:"status"`
	AssignedVerifierID string               `json:"assignedVerifierId,omitempty" bson:"assignedVerifierId,omitempty"`
	VerifiedBy         string               `json:"verifiedBy,omitempty" bson:"verifiedBy,omitempty"`
	VerifiedAt         *time.Time           `json:"verifiedAt,omitempty" bson:"verifiedAt,omitempty"`
	VerifierNotes      string               `json:"verifierNotes,omitempty" bson:"verifierNotes,omitempty"`
	RejectionReason    string               `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`

	SubmittedAt *time.Time `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	TimeModel   `bson:",inline"`
}

// AnswerSet classifies the stored raw answers into the tagged union the
// questionnaire engine evaluates.
func (s *SurveyResponse) AnswerSet() questionnaire.AnswerSet {
	return questionnaire.AnswerSetOf(s.Answers)
}

// Survey audit log actions.
const (
	AuditActionCreated     = "CREATED"
	AuditActionUpdated     = "UPDATED"
	AuditActionSubmitted   = "SUBMITTED"
	AuditActionVerified    = "VERIFIED"
	AuditActionRejected    = "REJECTED"
	AuditActionResubmitted = "RESUBMITTED"
)

// SurveyAuditLog records one lifecycle event. Rejection reasons live on in
// this trail even after a survey is edited and resubmitted.
type SurveyAuditLog struct {
	ID             string               `json:"id" bson:"_id,omitempty"`
	SurveyID       string               `json:"surveyId" bson:"surveyId"`
	Action         string               `json:"action" bson:"action"`
	UserID         string               `json:"userId" bson:"userId"`
	PreviousStatus questionnaire.Status `json:"previousStatus,omitempty" bson:"previousStatus,omitempty"`
	NewStatus      questionnaire.Status `json:"newStatus,omitempty" bson:"newStatus,omitempty"`
	Notes          string               `json:"notes,omitempty" bson:"notes,omitempty"`
	Timestamp      time.Time            `json:"timestamp" bson:"timestamp"`
}

// Survey attachment types.
const (
	AttachmentPhoto    = "PHOTO"
	AttachmentDocument = "DOCUMENT"
	AttachmentOther    = "OTHER"
)

// SurveyAttachment holds attachment metadata; the bytes live in object
// storage under ObjectName.
type SurveyAttachment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	SurveyID    string    `json:"surveyId" bson:"surveyId"`
	ObjectName  string    `json:"objectName" bson:"objectName"`
	FileName    string    `json:"fileName" bson:"fileName"`
	ContentType string    `json:"contentType" bson:"contentType"`
	Size        int64     `json:"size" bson:"size"`
	Type        string    `json:"type" bson:"type"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	UploadedBy  string    `json:"uploadedBy" bson:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploadedAt"`
}
