package constvars

// Validation messages for request DTOs, keyed by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":     "must be a valid role",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientResourceNotFound              = "the data you are looking for does not exist"
	ErrClientTemplateNotFound              = "survey template not found"
	ErrClientTemplateImmutable             = "this template already has responses and can no longer be edited, publish a new version instead"
	ErrClientTemplateVersionExists         = "a template with this code and version already exists"
	ErrClientSurveyNotFound                = "survey not found"
	ErrClientNotSurveyOwner                = "only the surveyor who created this survey can modify it"
	ErrClientInvalidTransition             = "this action is not allowed for the survey's current status"
	ErrClientRejectionReasonRequired       = "a rejection reason is required to reject a survey"
	ErrClientServiceNotFound               = "service not found"
	ErrClientClassificationNotFound        = "classification code not found"
	ErrClientFileTooLarge                  = "uploaded file is too large"
	ErrClientInvalidFileType               = "uploaded file type is not supported"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevValidationFailed   = "validation failed"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevDocumentNotFound   = "document not found"
	ErrDevInvalidCredentials = "invalid credentials"

	// Authentication messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthInvalidSession = "invalid session"
	ErrDevAuthGenerateToken  = "failed to generate token"
	ErrDevInvalidRoleType    = "invalid role type"
	ErrDevRoleTypeDoesntMatch = "role does not allow this action"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisStoreSession  = "failed to store session data into redis"
	ErrDevRedisGetSession    = "failed to get session data from redis"
	ErrDevRedisDeleteSession = "failed to delete session data from redis"
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
	ErrDevRateLimitExceeded      = "per-IP rate limit exhausted"
	ErrDevInvalidRemoteAddr      = "cannot split host and port from remote address"

	// Survey lifecycle messages
	ErrDevSurveyInvalidTransition      = "transition not allowed from current status"
	ErrDevSurveyNotOwner               = "actor is not the owning surveyor"
	ErrDevSurveyRejectionReasonMissing = "reject payload missing rejection_reason"
	ErrDevTemplateImmutable            = "template referenced by responses is immutable"

	// Storage messages
	ErrDevStorageUploadFailed   = "failed to upload object to storage"
	ErrDevStorageDownloadFailed = "failed to download object from storage"

	// Queue messages
	ErrDevQueuePublishFailed = "failed to publish message to queue"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
