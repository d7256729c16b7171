package surveys

import (
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/surveyqueue"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (string, error) {
	args := m.Called(ctx, survey)
	return args.String(0), args.Error(1)
}

func (m *MockSurveyRepository) FindByID(ctx context.Context, surveyID string) (*models.SurveyResponse, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SurveyResponse), args.Error(1)
}

func (m *MockSurveyRepository) UpdateSurvey(ctx context.Context, survey *models.SurveyResponse) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockSurveyRepository) UpdateStatus(ctx context.Context, surveyID string, expected questionnaire.Status, set map[string]interface{}) (bool, error) {
	args := m.Called(ctx, surveyID, expected, set)
	return args.Bool(0), args.Error(1)
}

func (m *MockSurveyRepository) FindAllScoped(ctx context.Context, session *models.Session, request *requests.ListSurveys) ([]models.SurveyResponse, int, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.SurveyResponse), args.Int(1), args.Error(2)
}

func (m *MockSurveyRepository) CountByTemplateID(ctx context.Context, templateID string) (int64, error) {
	args := m.Called(ctx, templateID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSurveyRepository) CountByStatus(ctx context.Context) (map[string]int, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(map[string]int), args.Int(1), args.Error(2)
}

func (m *MockSurveyRepository) CountCreatedSince(ctx context.Context, days int) (int, error) {
	args := m.Called(ctx, days)
	return args.Int(0), args.Error(1)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) CreateAuditLog(ctx context.Context, logModel *models.SurveyAuditLog) error {
	args := m.Called(ctx, logModel)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAuditLogsBySurveyID(ctx context.Context, surveyID string) ([]models.SurveyAuditLog, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SurveyAuditLog), args.Error(1)
}

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) CreateAttachment(ctx context.Context, attachment *models.SurveyAttachment) (string, error) {
	args := m.Called(ctx, attachment)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentRepository) FindAttachmentsBySurveyID(ctx context.Context, surveyID string) ([]models.SurveyAttachment, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SurveyAttachment), args.Error(1)
}

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

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) CreateService(ctx context.Context, serviceModel *models.Service) (string, error) {
	args := m.Called(ctx, serviceModel)
	return args.String(0), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, serviceModel *models.Service) error {
	args := m.Called(ctx, serviceModel)
	return args.Error(0)
}

func (m *MockServiceRepository) FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, int, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Service), args.Int(1), args.Error(2)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) error {
	args := m.Called(ctx, file, fileHeader, objectName)
	return args.Error(0)
}

func (m *MockStorage) PresignedDownloadURL(ctx context.Context, objectName, fileName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, fileName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RemoveFile(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *surveyqueue.SurveyEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type surveyUsecaseMocks struct {
	surveyRepo     *MockSurveyRepository
	auditRepo      *MockAuditLogRepository
	attachmentRepo *MockAttachmentRepository
	templateRepo   *MockTemplateRepository
	serviceRepo    *MockServiceRepository
	storage        *MockStorage
	publisher      *MockEventPublisher
}

func newSurveyUsecaseWithMocks(resubmitPolicy string) (SurveyUsecase, *surveyUsecaseMocks) {
	mocks := &surveyUsecaseMocks{
		surveyRepo:     new(MockSurveyRepository),
		auditRepo:      new(MockAuditLogRepository),
		attachmentRepo: new(MockAttachmentRepository),
		templateRepo:   new(MockTemplateRepository),
		serviceRepo:    new(MockServiceRepository),
		storage:        new(MockStorage),
		publisher:      new(MockEventPublisher),
	}

	internalConfig := &config.InternalConfig{
		App: config.App{
			ResubmitPolicy:              resubmitPolicy,
			AttachmentMaxUploadSizeInMB: 10,
		},
	}

	usecase := NewSurveyUsecase(
		zap.NewNop(),
		mocks.surveyRepo,
		mocks.auditRepo,
		mocks.attachmentRepo,
		mocks.templateRepo,
		mocks.serviceRepo,
		mocks.storage,
		mocks.publisher,
		internalConfig,
	)
	return usecase, mocks
}

func draftSurvey(surveyorID string) *models.SurveyResponse {
	return &models.SurveyResponse{
		ID:         "survey-1",
		TemplateID: "template-1",
		ServiceID:  "service-1",
		SurveyorID: surveyorID,
		Status:     questionnaire.StatusDraft,
		Answers:    map[string]interface{}{"SERVICE_NAME": "Puskesmas Melati"},
	}
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	if !ok {
		t.Fatalf("expected *exceptions.CustomError, got %T", err)
	}
	return customErr.StatusCode
}

func TestSurveyUsecase_SubmitSurvey(t *testing.T) {
	surveyorSession := &models.Session{UserID: "user-1", Role: constvars.RoleSurveyor}

	t.Run("Submit Draft Survey", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(draftSurvey("user-1"), nil)
		mocks.surveyRepo.On("UpdateStatus", mock.Anything, "survey-1", questionnaire.StatusDraft, mock.Anything).Return(true, nil)
		mocks.auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
		mocks.templateRepo.On("FindByID", mock.Anything, "template-1").Return(&questionnaire.Template{ID: "template-1"}, nil)

		detail, err := usecase.SubmitSurvey(context.Background(), surveyorSession, "survey-1", &requests.SubmitSurvey{AssignedVerifierID: "verifier-1"})

		assert.NoError(t, err)
		assert.Equal(t, questionnaire.StatusSubmitted, detail.Status)
		assert.Equal(t, "verifier-1", detail.AssignedVerifierID)
		assert.NotNil(t, detail.SubmittedAt)
		mocks.surveyRepo.AssertExpectations(t)
		mocks.publisher.AssertExpectations(t)
	})

	t.Run("Submit Someone Else's Survey", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(draftSurvey("someone-else"), nil)

		_, err := usecase.SubmitSurvey(context.Background(), surveyorSession, "survey-1", &requests.SubmitSurvey{})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCode(t, err))
		mocks.surveyRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Submit Already Submitted Survey", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		survey := draftSurvey("user-1")
		survey.Status = questionnaire.StatusSubmitted
		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(survey, nil)

		_, err := usecase.SubmitSurvey(context.Background(), surveyorSession, "survey-1", &requests.SubmitSurvey{})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCode(t, err))
	})

	t.Run("Submit Lost the Status Race", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(draftSurvey("user-1"), nil)
		mocks.surveyRepo.On("UpdateStatus", mock.Anything, "survey-1", questionnaire.StatusDraft, mock.Anything).Return(false, nil)

		_, err := usecase.SubmitSurvey(context.Background(), surveyorSession, "survey-1", &requests.SubmitSurvey{})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCode(t, err))
		mocks.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Submit Missing Survey", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := usecase.SubmitSurvey(context.Background(), surveyorSession, "missing", &requests.SubmitSurvey{})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCode(t, err))
	})
}

func TestSurveyUsecase_VerifySurvey(t *testing.T) {
	verifierSession := &models.Session{UserID: "verifier-1", Role: constvars.RoleVerifier}

	submittedSurvey := func(assignedTo string) *models.SurveyResponse {
		survey := draftSurvey("user-1")
		survey.Status = questionnaire.StatusSubmitted
		survey.AssignedVerifierID = assignedTo
		return survey
	}

	t.Run("Verify Assigned Survey", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(submittedSurvey("verifier-1"), nil)
		mocks.surveyRepo.On("UpdateStatus", mock.Anything, "survey-1", questionnaire.StatusSubmitted, mock.Anything).Return(true, nil)
		mocks.auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
		mocks.templateRepo.On("FindByID", mock.Anything, "template-1").Return(&questionnaire.Template{ID: "template-1"}, nil)

		detail, err := usecase.VerifySurvey(context.Background(), verifierSession, "survey-1", &requests.VerifySurvey{
			Action: requests.VerifyActionVerify,
			Notes:  "checked against the field report",
		})

		assert.NoError(t, err)
		assert.Equal(t, questionnaire.StatusVerified, detail.Status)
		assert.Equal(t, "verifier-1", detail.VerifiedBy)
		assert.NotNil(t, detail.VerifiedAt)
		mocks.surveyRepo.AssertExpectations(t)
	})

	t.Run("Verify Survey Assigned to Another Verifier", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(submittedSurvey("verifier-2"), nil)

		_, err := usecase.VerifySurvey(context.Background(), verifierSession, "survey-1", &requests.VerifySurvey{
			Action: requests.VerifyActionVerify,
		})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCode(t, err))
		mocks.surveyRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Verify Unassigned Survey", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(submittedSurvey(""), nil)
		mocks.surveyRepo.On("UpdateStatus", mock.Anything, "survey-1", questionnaire.StatusSubmitted, mock.Anything).Return(true, nil)
		mocks.auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
		mocks.templateRepo.On("FindByID", mock.Anything, "template-1").Return(&questionnaire.Template{ID: "template-1"}, nil)

		detail, err := usecase.VerifySurvey(context.Background(), verifierSession, "survey-1", &requests.VerifySurvey{
			Action: requests.VerifyActionVerify,
		})

		assert.NoError(t, err)
		assert.Equal(t, questionnaire.StatusVerified, detail.Status)
	})

	t.Run("Reject without Reason", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(submittedSurvey("verifier-1"), nil)

		_, err := usecase.VerifySurvey(context.Background(), verifierSession, "survey-1", &requests.VerifySurvey{
			Action: requests.VerifyActionReject,
		})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, statusCode(t, err))
		mocks.surveyRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reject with Reason", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(submittedSurvey("verifier-1"), nil)
		mocks.surveyRepo.On("UpdateStatus", mock.Anything, "survey-1", questionnaire.StatusSubmitted, mock.MatchedBy(func(set map[string]interface{}) bool {
			if set["rejectionReason"] != "coordinates point to an empty lot" {
				return false
			}
			// A rejection never carries the verification stamp.
			_, hasVerifiedBy := set["verifiedBy"]
			_, hasVerifiedAt := set["verifiedAt"]
			return !hasVerifiedBy && !hasVerifiedAt
		})).Return(true, nil)
		mocks.auditRepo.On("CreateAuditLog", mock.Anything, mock.MatchedBy(func(logModel *models.SurveyAuditLog) bool {
			return logModel.Notes == "checked the coordinates on site"
		})).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
		mocks.templateRepo.On("FindByID", mock.Anything, "template-1").Return(&questionnaire.Template{ID: "template-1"}, nil)

		detail, err := usecase.VerifySurvey(context.Background(), verifierSession, "survey-1", &requests.VerifySurvey{
			Action:          requests.VerifyActionReject,
			Notes:           "checked the coordinates on site",
			RejectionReason: "coordinates point to an empty lot",
		})

		assert.NoError(t, err)
		assert.Equal(t, questionnaire.StatusRejected, detail.Status)
		assert.Equal(t, "coordinates point to an empty lot", detail.RejectionReason)
		assert.Empty(t, detail.VerifiedBy)
		assert.Nil(t, detail.VerifiedAt)
		mocks.surveyRepo.AssertExpectations(t)
		mocks.auditRepo.AssertExpectations(t)
	})

	t.Run("Surveyor Cannot Verify", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		surveyorSession := &models.Session{UserID: "user-1", Role: constvars.RoleSurveyor}
		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(submittedSurvey(""), nil)

		_, err := usecase.VerifySurvey(context.Background(), surveyorSession, "survey-1", &requests.VerifySurvey{
			Action: requests.VerifyActionVerify,
		})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCode(t, err))
	})
}

func TestSurveyUsecase_ResubmitSurvey(t *testing.T) {
	surveyorSession := &models.Session{UserID: "user-1", Role: constvars.RoleSurveyor}

	rejectedSurvey := func() *models.SurveyResponse {
		survey := draftSurvey("user-1")
		survey.Status = questionnaire.StatusRejected
		survey.RejectionReason = "coordinates point to an empty lot"
		return survey
	}

	t.Run("Resubmit Lands in Draft under Draft Policy", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(rejectedSurvey(), nil)
		mocks.surveyRepo.On("UpdateStatus", mock.Anything, "survey-1", questionnaire.StatusRejected, mock.Anything).Return(true, nil)
		mocks.auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
		mocks.templateRepo.On("FindByID", mock.Anything, "template-1").Return(&questionnaire.Template{ID: "template-1"}, nil)

		detail, err := usecase.ResubmitSurvey(context.Background(), surveyorSession, "survey-1", &requests.ResubmitSurvey{
			Answers: map[string]interface{}{"GPS_POINT": "corrected"},
		})

		assert.NoError(t, err)
		assert.Equal(t, questionnaire.StatusDraft, detail.Status)
		assert.Equal(t, "corrected", detail.Answers["GPS_POINT"])
		assert.Equal(t, "coordinates point to an empty lot", detail.RejectionReason, "rejection reason stays on the record")
	})

	t.Run("Resubmit Lands in Submitted under Submitted Policy", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("submitted")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(rejectedSurvey(), nil)
		mocks.surveyRepo.On("UpdateStatus", mock.Anything, "survey-1", questionnaire.StatusRejected, mock.MatchedBy(func(set map[string]interface{}) bool {
			_, hasSubmittedAt := set["submittedAt"]
			return hasSubmittedAt
		})).Return(true, nil)
		mocks.auditRepo.On("CreateAuditLog", mock.Anything, mock.Anything).Return(nil)
		mocks.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
		mocks.templateRepo.On("FindByID", mock.Anything, "template-1").Return(&questionnaire.Template{ID: "template-1"}, nil)

		detail, err := usecase.ResubmitSurvey(context.Background(), surveyorSession, "survey-1", &requests.ResubmitSurvey{})

		assert.NoError(t, err)
		assert.Equal(t, questionnaire.StatusSubmitted, detail.Status)
		assert.NotNil(t, detail.SubmittedAt)
		mocks.surveyRepo.AssertExpectations(t)
	})

	t.Run("Resubmit a Draft Survey", func(t *testing.T) {
		usecase, mocks := newSurveyUsecaseWithMocks("draft")

		mocks.surveyRepo.On("FindByID", mock.Anything, "survey-1").Return(draftSurvey("user-1"), nil)

		_, err := usecase.ResubmitSurvey(context.Background(), surveyorSession, "survey-1", &requests.ResubmitSurvey{})

		assert.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCode(t, err))
	})
}

func TestSurveyUsecase_GetStats(t *testing.T) {
	usecase, mocks := newSurveyUsecaseWithMocks("draft")

	mocks.surveyRepo.On("CountByStatus", mock.Anything).
		Return(map[string]int{"DRAFT": 3, "SUBMITTED": 2, "VERIFIED": 5}, 10, nil)
	mocks.surveyRepo.On("CountCreatedSince", mock.Anything, 30).Return(4, nil)

	stats, err := usecase.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 10, stats.TotalSurveys)
	assert.Equal(t, 4, stats.RecentSurveys)
	assert.Equal(t, 5, stats.StatusDistribution["VERIFIED"])
}
