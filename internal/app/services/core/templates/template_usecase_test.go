package templates

import (
	"context"
	"testing"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) CreateTemplate(ctx context.Context, tmpl *questionnaire.Template) (string, error) {
	args := m.Called(ctx, tmpl)
	return args.String(0), args.Error(1)
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, templateID string) (*questionnaire.Template, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*questionnaire.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindByCodeAndVersion(ctx context.Context, code, version string) (*questionnaire.Template, error) {
	args := m.Called(ctx, code, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*questionnaire.Template), args.Error(1)
}

func (m *MockTemplateRepository) UpdateTemplate(ctx context.Context, tmpl *questionnaire.Template) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockTemplateRepository) FindAll(ctx context.Context, request *requests.ListTemplates) ([]questionnaire.Template, int, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]questionnaire.Template), args.Int(1), args.Error(2)
}

type MockResponseCounter struct {
	mock.Mock
}

func (m *MockResponseCounter) CountByTemplateID(ctx context.Context, templateID string) (int64, error) {
	args := m.Called(ctx, templateID)
	return args.Get(0).(int64), args.Error(1)
}

func exampleCreateTemplate() *requests.CreateTemplate {
	return &requests.CreateTemplate{
		Code:    "RESIDENTIAL_SURVEY",
		Name:    "Survei Layanan Residensial",
		Version: "1.0.0",
		Type:    questionnaire.TemplateTypeResidential,
		Sections: []questionnaire.Section{
			{
				ID:   "sec-1",
				Code: "CAPACITY",
				Name: "Kapasitas",
				Questions: []questionnaire.Question{
					{ID: "q-1", Code: "BED_COUNT", Text: "Jumlah tempat tidur", AnswerType: questionnaire.AnswerTypeInteger, IsRequired: true},
				},
			},
		},
	}
}

func TestTemplateUsecase_CreateTemplate(t *testing.T) {
	t.Run("Create New Version", func(t *testing.T) {
		mockRepo := new(MockTemplateRepository)
		mockCounter := new(MockResponseCounter)
		usecase := NewTemplateUsecase(mockRepo, mockCounter)

		mockRepo.On("FindByCodeAndVersion", mock.Anything, "RESIDENTIAL_SURVEY", "1.0.0").Return(nil, nil)
		mockRepo.On("CreateTemplate", mock.Anything, mock.AnythingOfType("*questionnaire.Template")).Return("template-1", nil)

		tmpl, err := usecase.CreateTemplate(context.Background(), exampleCreateTemplate())

		assert.NoError(t, err)
		assert.Equal(t, "template-1", tmpl.ID)
		assert.True(t, tmpl.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Create Duplicate Code and Version", func(t *testing.T) {
		mockRepo := new(MockTemplateRepository)
		mockCounter := new(MockResponseCounter)
		usecase := NewTemplateUsecase(mockRepo, mockCounter)

		mockRepo.On("FindByCodeAndVersion", mock.Anything, "RESIDENTIAL_SURVEY", "1.0.0").
			Return(&questionnaire.Template{ID: "template-1"}, nil)

		_, err := usecase.CreateTemplate(context.Background(), exampleCreateTemplate())

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "CreateTemplate", mock.Anything, mock.Anything)
	})
}

func TestTemplateUsecase_UpdateTemplate(t *testing.T) {
	t.Run("Update Unreferenced Template", func(t *testing.T) {
		mockRepo := new(MockTemplateRepository)
		mockCounter := new(MockResponseCounter)
		usecase := NewTemplateUsecase(mockRepo, mockCounter)

		mockRepo.On("FindByID", mock.Anything, "template-1").
			Return(&questionnaire.Template{ID: "template-1", Code: "RESIDENTIAL_SURVEY", Version: "1.0.0", IsActive: true}, nil)
		mockCounter.On("CountByTemplateID", mock.Anything, "template-1").Return(int64(0), nil)
		mockRepo.On("UpdateTemplate", mock.Anything, mock.AnythingOfType("*questionnaire.Template")).Return(nil)

		request := exampleCreateTemplate()
		request.Name = "Survei Layanan Residensial (revisi)"

		tmpl, err := usecase.UpdateTemplate(context.Background(), "template-1", request)

		assert.NoError(t, err)
		assert.Equal(t, "Survei Layanan Residensial (revisi)", tmpl.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Update Referenced Template", func(t *testing.T) {
		mockRepo := new(MockTemplateRepository)
		mockCounter := new(MockResponseCounter)
		usecase := NewTemplateUsecase(mockRepo, mockCounter)

		mockRepo.On("FindByID", mock.Anything, "template-1").
			Return(&questionnaire.Template{ID: "template-1", IsActive: true}, nil)
		mockCounter.On("CountByTemplateID", mock.Anything, "template-1").Return(int64(7), nil)

		_, err := usecase.UpdateTemplate(context.Background(), "template-1", exampleCreateTemplate())

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "UpdateTemplate", mock.Anything, mock.Anything)
	})

	t.Run("Update Missing Template", func(t *testing.T) {
		mockRepo := new(MockTemplateRepository)
		mockCounter := new(MockResponseCounter)
		usecase := NewTemplateUsecase(mockRepo, mockCounter)

		mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := usecase.UpdateTemplate(context.Background(), "missing", exampleCreateTemplate())

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestTemplateUsecase_DeactivateTemplate(t *testing.T) {
	mockRepo := new(MockTemplateRepository)
	mockCounter := new(MockResponseCounter)
	usecase := NewTemplateUsecase(mockRepo, mockCounter)

	mockRepo.On("FindByID", mock.Anything, "template-1").
		Return(&questionnaire.Template{ID: "template-1", IsActive: true}, nil)
	mockRepo.On("UpdateTemplate", mock.Anything, mock.MatchedBy(func(tmpl *questionnaire.Template) bool {
		return !tmpl.IsActive
	})).Return(nil)

	err := usecase.DeactivateTemplate(context.Background(), "template-1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
