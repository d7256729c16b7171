package constvars

const (
	RegisterSuccessMessage   = "successfully registered"
	LoginSuccessMessage      = "successfully logged in"
	LogoutSuccessMessage     = "successfully logged out"
	GetProfileSuccessMessage = "successfully fetched profile"
	UpdateUserSuccessMessage = "successfully updated user"
	GetUsersSuccessMessage   = "successfully fetched users"

	GetClassificationsSuccessMessage = "successfully fetched classifications"

	CreateServiceSuccessMessage = "successfully created service"
	GetServicesSuccessMessage   = "successfully fetched services"
	GetServiceSuccessMessage    = "successfully fetched service"
	UpdateServiceSuccessMessage = "successfully updated service"
	DeleteServiceSuccessMessage = "successfully deleted service"
	VerifyServiceSuccessMessage = "successfully verified service"

	CreateTemplateSuccessMessage = "successfully created survey template"
	GetTemplatesSuccessMessage   = "successfully fetched survey templates"
	GetTemplateSuccessMessage    = "successfully fetched survey template"

	CreateSurveySuccessMessage     = "successfully created survey draft"
	SaveProgressSuccessMessage     = "successfully saved survey progress"
	SubmitSurveySuccessMessage     = "successfully submitted survey"
	VerifySurveySuccessMessage     = "successfully processed verification"
	ResubmitSurveySuccessMessage   = "successfully resubmitted survey"
	GetSurveysSuccessMessage       = "successfully fetched surveys"
	GetSurveySuccessMessage        = "successfully fetched survey"
	UploadAttachmentSuccessMessage = "successfully uploaded attachment"
	GetAttachmentsSuccessMessage   = "successfully fetched attachments"
	GetAuditLogsSuccessMessage     = "successfully fetched audit logs"
)
