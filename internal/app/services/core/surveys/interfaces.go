package surveys

import (
	"context"
	"mime/multipart"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/surveyqueue"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/responses"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"
)

type SurveyUsecase interface {
	CreateSurvey(ctx context.Context, session *models.Session, request *requests.CreateSurvey) (*responses.SurveyDetail, error)
	GetSurveyByID(ctx context.Context, session *models.Session, surveyID string) (*responses.SurveyDetail, error)
	SaveProgress(ctx context.Context, session *models.Session, surveyID string, request *requests.SaveSurveyProgress) (*responses.SurveyDetail, error)
	SubmitSurvey(ctx context.Context, session *models.Session, surveyID string, request *requests.SubmitSurvey) (*responses.SurveyDetail, error)
	VerifySurvey(ctx context.Context, session *models.Session, surveyID string, request *requests.VerifySurvey) (*responses.SurveyDetail, error)
	ResubmitSurvey(ctx context.Context, session *models.Session, surveyID string, request *requests.ResubmitSurvey) (*responses.SurveyDetail, error)
	ListSurveys(ctx context.Context, session *models.Session, request *requests.ListSurveys) ([]responses.SurveyDetail, int, error)
	GetStats(ctx context.Context) (*responses.SurveyStats, error)

	UploadAttachment(ctx context.Context, session *models.Session, surveyID string, file multipart.File, fileHeader *multipart.FileHeader, attachmentType, description string) (*models.SurveyAttachment, error)
	ListAttachments(ctx context.Context, session *models.Session, surveyID string) ([]responses.AttachmentView, error)
	ListAuditLogs(ctx context.Context, session *models.Session, surveyID string) ([]models.SurveyAuditLog, error)
}

type SurveyRepository interface {
	CreateSurvey(ctx context.Context, survey *models.SurveyResponse) (surveyID string, err error)
	FindByID(ctx context.Context, surveyID string) (*models.SurveyResponse, error)
	UpdateSurvey(ctx context.Context, survey *models.SurveyResponse) error

	// UpdateStatus applies the set only when the stored status still equals
	// expected. Returns false when another writer got there first.
	UpdateStatus(ctx context.Context, surveyID string, expected questionnaire.Status, set map[string]interface{}) (bool, error)

	FindAllScoped(ctx context.Context, session *models.Session, request *requests.ListSurveys) ([]models.SurveyResponse, int, error)
	CountByTemplateID(ctx context.Context, templateID string) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int, int, error)
	CountCreatedSince(ctx context.Context, days int) (int, error)
}

type AuditLogRepository interface {
	CreateAuditLog(ctx context.Context, logModel *models.SurveyAuditLog) error
	FindAuditLogsBySurveyID(ctx context.Context, surveyID string) ([]models.SurveyAuditLog, error)
}

type AttachmentRepository interface {
	CreateAttachment(ctx context.Context, attachment *models.SurveyAttachment) (attachmentID string, err error)
	FindAttachmentsBySurveyID(ctx context.Context, surveyID string) ([]models.SurveyAttachment, error)
}

// EventPublisher decouples the usecase from the broker client. Satisfied by
// the surveyqueue service.
type EventPublisher interface {
	Publish(ctx context.Context, event *surveyqueue.SurveyEvent) error
}
