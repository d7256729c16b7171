package constvars

// URL parameter names.
const (
	URLParamSurveyID   = "surveyID"
	URLParamTemplateID = "templateID"
	URLParamServiceID  = "serviceID"
	URLParamUserID     = "userID"
	URLParamCode       = "code"
)

// Query parameter names.
const (
	QueryParamPage     = "page"
	QueryParamPageSize = "pageSize"
	QueryParamStatus   = "status"
	QueryParamType     = "type"
	QueryParamSearch   = "search"
	QueryParamCity     = "city"
	QueryParamMTC      = "mtc"
)
