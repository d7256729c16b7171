package templates

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"
)

type templateUsecase struct {
	TemplateRepository TemplateRepository
	ResponseCounter    ResponseCounter
}

func NewTemplateUsecase(
	templateMongoRepository TemplateRepository,
	responseCounter ResponseCounter,
) TemplateUsecase {
	return &templateUsecase{
		TemplateRepository: templateMongoRepository,
		ResponseCounter:    responseCounter,
	}
}

func (uc *templateUsecase) CreateTemplate(ctx context.Context, request *requests.CreateTemplate) (*questionnaire.Template, error) {
	existing, err := uc.TemplateRepository.FindByCodeAndVersion(ctx, request.Code, request.Version)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusConflict, constvars.ErrClientTemplateVersionExists, constvars.ErrDevInvalidInput)
	}

	tmpl := &questionnaire.Template{
		Code:        request.Code,
		Name:        request.Name,
		Description: request.Description,
		Version:     request.Version,
		Type:        request.Type,
		TargetMTC:   request.TargetMTC,
		IsActive:    true,
		Sections:    request.Sections,
	}

	templateID, err := uc.TemplateRepository.CreateTemplate(ctx, tmpl)
	if err != nil {
		return nil, err
	}
	tmpl.ID = templateID
	return tmpl, nil
}

func (uc *templateUsecase) GetTemplateByID(ctx context.Context, templateID string) (*questionnaire.Template, error) {
	tmpl, err := uc.TemplateRepository.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, exceptions.ErrTemplateNotFound(nil)
	}
	return tmpl, nil
}

func (uc *templateUsecase) UpdateTemplate(ctx context.Context, templateID string, request *requests.CreateTemplate) (*questionnaire.Template, error) {
	tmpl, err := uc.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	// A template already referenced by responses is frozen; edits must be
	// published as a new version.
	referenced, err := uc.ResponseCounter.CountByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if referenced > 0 {
		return nil, exceptions.ErrTemplateImmutable()
	}

	tmpl.Name = request.Name
	tmpl.Description = request.Description
	tmpl.Version = request.Version
	tmpl.Type = request.Type
	tmpl.TargetMTC = request.TargetMTC
	tmpl.Sections = request.Sections

	if err := uc.TemplateRepository.UpdateTemplate(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (uc *templateUsecase) DeactivateTemplate(ctx context.Context, templateID string) error {
	tmpl, err := uc.GetTemplateByID(ctx, templateID)
	if err != nil {
		return err
	}

	// Deactivation only hides the template from new surveys; existing
	// responses still resolve it by id.
	tmpl.IsActive = false
	return uc.TemplateRepository.UpdateTemplate(ctx, tmpl)
}

func (uc *templateUsecase) ListTemplates(ctx context.Context, request *requests.ListTemplates) ([]questionnaire.Template, int, error) {
	return uc.TemplateRepository.FindAll(ctx, request)
}
