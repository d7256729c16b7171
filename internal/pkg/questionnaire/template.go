package questionnaire

// Template types mirror the SurveyTemplate taxonomy used across Atlas Keswa.
const (
	TemplateTypeResidential   = "RESIDENTIAL"
	TemplateTypeDayCare       = "DAY_CARE"
	TemplateTypeOutpatient    = "OUTPATIENT"
	TemplateTypeAccessibility = "ACCESSIBILITY"
	TemplateTypeInformation   = "INFORMATION"
	TemplateTypeBasicData     = "BASIC_DATA"
	TemplateTypeGeneral       = "GENERAL"
)

// Answer types a Question may declare.
const (
	AnswerTypeText           = "TEXT"
	AnswerTypeTextArea       = "TEXTAREA"
	AnswerTypeNumber         = "NUMBER"
	AnswerTypeInteger        = "INTEGER"
	AnswerTypeDate           = "DATE"
	AnswerTypeTime           = "TIME"
	AnswerTypeBoolean        = "BOOLEAN"
	AnswerTypeSingleChoice   = "SINGLE_CHOICE"
	AnswerTypeMultipleChoice = "MULTIPLE_CHOICE"
	AnswerTypeGeoProvinsi    = "GEO_PROVINSI"
	AnswerTypeGeoKabupaten   = "GEO_KABUPATEN"
	AnswerTypeGeoKecamatan   = "GEO_KECAMATAN"
	AnswerTypeGeoDesa        = "GEO_DESA"
	AnswerTypeGeoFull        = "GEO_FULL"
	AnswerTypeCoverageLevel  = "COVERAGE_LEVEL"
	AnswerTypePhone          = "PHONE"
	AnswerTypeEmail          = "EMAIL"
	AnswerTypeUrl            = "URL"
	AnswerTypeFile           = "FILE"
	AnswerTypeGPS            = "GPS"
	AnswerTypeStaffTable     = "STAFF_TABLE"
	AnswerTypeDiagnosisTable = "DIAGNOSIS_TABLE"
	AnswerTypeLocation       = "LOCATION"
)

// Template is the declarative definition of a questionnaire. Once survey
// responses reference a template it is treated as immutable; edits are
// published as a new version with a new record.
type Template struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Code        string    `json:"code" bson:"code"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Version     string    `json:"version" bson:"version"`
	Type        string    `json:"template_type" bson:"templateType"`
	TargetMTC   string    `json:"target_mtc,omitempty" bson:"targetMtc,omitempty"`
	IsActive    bool      `json:"is_active" bson:"isActive"`
	Sections    []Section `json:"sections" bson:"sections"`
}

type Section struct {
	ID            string     `json:"id" bson:"id"`
	Code          string     `json:"code" bson:"code"`
	Name          string     `json:"name" bson:"name"`
	Description   string     `json:"description,omitempty" bson:"description,omitempty"`
	Order         int        `json:"order" bson:"order"`
	ShowCondition *Condition `json:"show_condition,omitempty" bson:"showCondition,omitempty"`
	Questions     []Question `json:"questions" bson:"questions"`
}

type Question struct {
	ID         string           `json:"id" bson:"id"`
	Code       string           `json:"code" bson:"code"`
	Text       string           `json:"question_text" bson:"questionText"`
	AnswerType string           `json:"answer_type" bson:"answerType"`
	IsRequired bool             `json:"is_required" bson:"isRequired"`
	Order      int              `json:"order" bson:"order"`
	HelpText   string           `json:"help_text,omitempty" bson:"helpText,omitempty"`
	MTCCode    string           `json:"mtc_code,omitempty" bson:"mtcCode,omitempty"`
	Validation *ValidationRules `json:"validation_rules,omitempty" bson:"validationRules,omitempty"`

	// Explicit visibility rule. Takes precedence over the parent shorthand.
	ShowCondition *Condition `json:"show_condition,omitempty" bson:"showCondition,omitempty"`

	// Parent-question shorthand: show this question when the parent's answer
	// matches ShowIfValue. Normalized to a Condition via EffectiveCondition.
	ParentQuestionCode string      `json:"parent_question_code,omitempty" bson:"parentQuestionCode,omitempty"`
	ShowIfValue        interface{} `json:"show_if_value,omitempty" bson:"showIfValue,omitempty"`

	Choices     []Choice     `json:"choices,omitempty" bson:"choices,omitempty"`
	TableConfig *TableConfig `json:"table_config,omitempty" bson:"tableConfig,omitempty"`
}

type Choice struct {
	ID            string `json:"id" bson:"id"`
	Value         string `json:"value" bson:"value"`
	Label         string `json:"label" bson:"label"`
	Order         int    `json:"order" bson:"order"`
	MTCCode       string `json:"mtc_code,omitempty" bson:"mtcCode,omitempty"`
	HasOtherInput bool   `json:"has_other_input,omitempty" bson:"hasOtherInput,omitempty"`
	OtherLabel    string `json:"other_input_label,omitempty" bson:"otherInputLabel,omitempty"`
}

type TableConfig struct {
	Rows    []TableRow    `json:"rows" bson:"rows"`
	Columns []TableColumn `json:"columns" bson:"columns"`
}

type TableRow struct {
	Code  string `json:"code" bson:"code"`
	Label string `json:"label" bson:"label"`
}

type TableColumn struct {
	Code  string `json:"code" bson:"code"`
	Label string `json:"label" bson:"label"`
	Type  string `json:"type" bson:"type"`
}

type ValidationRules struct {
	Min       *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" bson:"max,omitempty"`
	MaxLength *int     `json:"max_length,omitempty" bson:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" bson:"pattern,omitempty"`
}

// EffectiveCondition normalizes the two ways a question can express
// visibility (explicit condition vs parent shorthand) into a single
// Condition so the evaluator has one code path. Returns nil for questions
// that are always visible.
func (q *Question) EffectiveCondition() *Condition {
	if q.ShowCondition != nil {
		return q.ShowCondition
	}
	if q.ParentQuestionCode != "" && q.ShowIfValue != nil {
		return &Condition{
			QuestionCode: q.ParentQuestionCode,
			Operator:     OperatorEquals,
			Value:        q.ShowIfValue,
		}
	}
	return nil
}

// FindQuestion returns the question with the given code, searching every
// section in declared order.
func (t *Template) FindQuestion(code string) *Question {
	for i := range t.Sections {
		for j := range t.Sections[i].Questions {
			if t.Sections[i].Questions[j].Code == code {
				return &t.Sections[i].Questions[j]
			}
		}
	}
	return nil
}
