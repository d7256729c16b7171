package constvars

// Mongo collection names.
const (
	MongoCollectionUsers             = "users"
	MongoCollectionUserActivityLogs  = "user_activity_logs"
	MongoCollectionServices          = "services"
	MongoCollectionMTC               = "mtc_classifications"
	MongoCollectionBSIC              = "bsic_classifications"
	MongoCollectionSurveyTemplates   = "survey_templates"
	MongoCollectionSurveyResponses   = "survey_responses"
	MongoCollectionSurveyAuditLogs   = "survey_audit_logs"
	MongoCollectionSurveyAttachments = "survey_attachments"
)
