package requests

import "github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"

type CreateTemplate struct {
	Code        string                  `json:"code" validate:"required,max=50"`
	Name        string                  `json:"name" validate:"required,max=300"`
	Description string                  `json:"description,omitempty"`
	Version     string                  `json:"version" validate:"required,max=20"`
	Type        string                  `json:"template_type" validate:"required,oneof=RESIDENTIAL DAY_CARE OUTPATIENT ACCESSIBILITY INFORMATION BASIC_DATA GENERAL"`
	TargetMTC   string                  `json:"target_mtc,omitempty"`
	Sections    []questionnaire.Section `json:"sections" validate:"required,min=1"`
}

type ListTemplates struct {
	Pagination
	Type       string
	ActiveOnly bool
}
