package templates

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"
)

type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, request *requests.CreateTemplate) (*questionnaire.Template, error)
	GetTemplateByID(ctx context.Context, templateID string) (*questionnaire.Template, error)
	UpdateTemplate(ctx context.Context, templateID string, request *requests.CreateTemplate) (*questionnaire.Template, error)
	DeactivateTemplate(ctx context.Context, templateID string) error
	ListTemplates(ctx context.Context, request *requests.ListTemplates) ([]questionnaire.Template, int, error)
}

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, tmpl *questionnaire.Template) (templateID string, err error)
	FindByID(ctx context.Context, templateID string) (*questionnaire.Template, error)
	FindByCodeAndVersion(ctx context.Context, code, version string) (*questionnaire.Template, error)
	UpdateTemplate(ctx context.Context, tmpl *questionnaire.Template) error
	FindAll(ctx context.Context, request *requests.ListTemplates) ([]questionnaire.Template, int, error)
}

// ResponseCounter reports how many survey responses reference a template.
// Satisfied by the surveys repository.
type ResponseCounter interface {
	CountByTemplateID(ctx context.Context, templateID string) (int64, error)
}
