package surveys

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/services"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/templates"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/storage"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/surveyqueue"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/responses"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const surveyDateLayout = "2006-01-02"

var allowedAttachmentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

type surveyUsecase struct {
	Log                  *zap.Logger
	SurveyRepository     SurveyRepository
	AuditLogRepository   AuditLogRepository
	AttachmentRepository AttachmentRepository
	TemplateRepository   templates.TemplateRepository
	ServiceRepository    services.ServiceRepository
	Storage              storage.Storage
	EventPublisher       EventPublisher
	InternalConfig       *config.InternalConfig
}

func NewSurveyUsecase(
	logger *zap.Logger,
	surveyMongoRepository SurveyRepository,
	auditLogMongoRepository AuditLogRepository,
	attachmentMongoRepository AttachmentRepository,
	templateMongoRepository templates.TemplateRepository,
	serviceMongoRepository services.ServiceRepository,
	minioStorage storage.Storage,
	eventPublisher EventPublisher,
	internalConfig *config.InternalConfig,
) SurveyUsecase {
	return &surveyUsecase{
		Log:                  logger,
		SurveyRepository:     surveyMongoRepository,
		AuditLogRepository:   auditLogMongoRepository,
		AttachmentRepository: attachmentMongoRepository,
		TemplateRepository:   templateMongoRepository,
		ServiceRepository:    serviceMongoRepository,
		Storage:              minioStorage,
		EventPublisher:       eventPublisher,
		InternalConfig:       internalConfig,
	}
}

func (uc *surveyUsecase) resubmitPolicy() questionnaire.ResubmitPolicy {
	return questionnaire.ResubmitPolicy(uc.InternalConfig.App.ResubmitPolicy)
}

func (uc *surveyUsecase) CreateSurvey(ctx context.Context, session *models.Session, request *requests.CreateSurvey) (*responses.SurveyDetail, error) {
	tmpl, err := uc.TemplateRepository.FindByID(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil || !tmpl.IsActive {
		return nil, exceptions.ErrTemplateNotFound(nil)
	}

	service, err := uc.ServiceRepository.FindByID(ctx, request.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}

	surveyDate, err := time.Parse(surveyDateLayout, request.SurveyDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	periodStart, err := time.Parse(surveyDateLayout, request.SurveyPeriodStart)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	periodEnd, err := time.Parse(surveyDateLayout, request.SurveyPeriodEnd)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	answers := request.Answers
	if answers == nil {
		answers = map[string]interface{}{}
	}

	now := time.Now()
	survey := &models.SurveyResponse{
		TemplateID:        request.TemplateID,
		ServiceID:         request.ServiceID,
		SurveyDate:        surveyDate,
		SurveyPeriodStart: periodStart,
		SurveyPeriodEnd:   periodEnd,
		Latitude:          request.Latitude,
		Longitude:         request.Longitude,
		LocationAccuracy:  request.LocationAccuracy,
		SurveyorID:        session.UserID,
		SurveyorNotes:     request.SurveyorNotes,
		Answers:           answers,
		Status:            questionnaire.StatusDraft,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	surveyID, err := uc.SurveyRepository.CreateSurvey(ctx, survey)
	if err != nil {
		return nil, err
	}
	survey.ID = surveyID

	uc.recordAudit(ctx, survey.ID, models.AuditActionCreated, session.UserID, "", questionnaire.StatusDraft, "")

	return responses.NewSurveyDetail(survey, tmpl), nil
}

func (uc *surveyUsecase) GetSurveyByID(ctx context.Context, session *models.Session, surveyID string) (*responses.SurveyDetail, error) {
	survey, err := uc.findAccessible(ctx, session, surveyID)
	if err != nil {
		return nil, err
	}
	tmpl, err := uc.TemplateRepository.FindByID(ctx, survey.TemplateID)
	if err != nil {
		return nil, err
	}
	return responses.NewSurveyDetail(survey, tmpl), nil
}

func (uc *surveyUsecase) SaveProgress(ctx context.Context, session *models.Session, surveyID string, request *requests.SaveSurveyProgress) (*responses.SurveyDetail, error) {
	survey, err := uc.findOwned(ctx, session, surveyID)
	if err != nil {
		return nil, err
	}

	if _, err := questionnaire.Transition(survey.Status, questionnaire.ActionSaveProgress, session.Role, uc.resubmitPolicy()); err != nil {
		return nil, err
	}

	mergeAnswers(survey, request.Answers)
	if request.Latitude != nil {
		survey.Latitude = request.Latitude
	}
	if request.Longitude != nil {
		survey.Longitude = request.Longitude
	}
	if request.LocationAccuracy != nil {
		survey.LocationAccuracy = request.LocationAccuracy
	}
	if request.SurveyorNotes != "" {
		survey.SurveyorNotes = request.SurveyorNotes
	}
	survey.UpdatedAt = time.Now()

	if err := uc.SurveyRepository.UpdateSurvey(ctx, survey); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, survey.ID, models.AuditActionUpdated, session.UserID, survey.Status, survey.Status, "")

	tmpl, err := uc.TemplateRepository.FindByID(ctx, survey.TemplateID)
	if err != nil {
		return nil, err
	}
	return responses.NewSurveyDetail(survey, tmpl), nil
}

func (uc *surveyUsecase) SubmitSurvey(ctx context.Context, session *models.Session, surveyID string, request *requests.SubmitSurvey) (*responses.SurveyDetail, error) {
	survey, err := uc.findOwned(ctx, session, surveyID)
	if err != nil {
		return nil, err
	}

	next, err := questionnaire.Transition(survey.Status, questionnaire.ActionSubmit, session.Role, uc.resubmitPolicy())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	set := map[string]interface{}{
		"status":      string(next),
		"submittedAt": now,
		"updatedAt":   now,
	}
	if request.AssignedVerifierID != "" {
		set["assignedVerifierId"] = request.AssignedVerifierID
	}

	applied, err := uc.SurveyRepository.UpdateStatus(ctx, survey.ID, survey.Status, set)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, exceptions.ErrSurveyInvalidTransition(string(survey.Status), string(questionnaire.ActionSubmit))
	}

	prior := survey.Status
	survey.Status = next
	survey.SubmittedAt = &now
	survey.AssignedVerifierID = request.AssignedVerifierID
	survey.UpdatedAt = now

	uc.recordAudit(ctx, survey.ID, models.AuditActionSubmitted, session.UserID, prior, next, "")
	uc.publishEvent(ctx, survey, models.AuditActionSubmitted, prior, session.UserID)

	tmpl, err := uc.TemplateRepository.FindByID(ctx, survey.TemplateID)
	if err != nil {
		return nil, err
	}
	return responses.NewSurveyDetail(survey, tmpl), nil
}

func (uc *surveyUsecase) VerifySurvey(ctx context.Context, session *models.Session, surveyID string, request *requests.VerifySurvey) (*responses.SurveyDetail, error) {
	survey, err := uc.SurveyRepository.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, exceptions.ErrSurveyNotFound(nil)
	}

	// A verifier may only act on surveys assigned to them; unassigned
	// submissions are open to any verifier.
	if session.Role == constvars.RoleVerifier &&
		survey.AssignedVerifierID != "" && survey.AssignedVerifierID != session.UserID {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	action := questionnaire.ActionVerify
	auditAction := models.AuditActionVerified
	if request.Action == requests.VerifyActionReject {
		if request.RejectionReason == "" {
			return nil, exceptions.ErrSurveyRejectionReasonMissing()
		}
		action = questionnaire.ActionReject
		auditAction = models.AuditActionRejected
	}

	next, err := questionnaire.Transition(survey.Status, action, session.Role, uc.resubmitPolicy())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	set := map[string]interface{}{
		"status":        string(next),
		"verifierNotes": request.Notes,
		"updatedAt":     now,
	}
	// The verification stamp belongs to approved surveys only; a rejection
	// leaves verifiedBy/verifiedAt unset.
	if action == questionnaire.ActionVerify {
		set["verifiedBy"] = session.UserID
		set["verifiedAt"] = now
	}
	if action == questionnaire.ActionReject {
		set["rejectionReason"] = request.RejectionReason
	}

	applied, err := uc.SurveyRepository.UpdateStatus(ctx, survey.ID, survey.Status, set)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, exceptions.ErrSurveyInvalidTransition(string(survey.Status), string(action))
	}

	prior := survey.Status
	survey.Status = next
	survey.VerifierNotes = request.Notes
	if action == questionnaire.ActionVerify {
		survey.VerifiedBy = session.UserID
		survey.VerifiedAt = &now
	}
	if action == questionnaire.ActionReject {
		survey.RejectionReason = request.RejectionReason
	}
	survey.UpdatedAt = now

	uc.recordAudit(ctx, survey.ID, auditAction, session.UserID, prior, next, request.Notes)
	uc.publishEvent(ctx, survey, auditAction, prior, session.UserID)

	tmpl, err := uc.TemplateRepository.FindByID(ctx, survey.TemplateID)
	if err != nil {
		return nil, err
	}
	return responses.NewSurveyDetail(survey, tmpl), nil
}

func (uc *surveyUsecase) ResubmitSurvey(ctx context.Context, session *models.Session, surveyID string, request *requests.ResubmitSurvey) (*responses.SurveyDetail, error) {
	survey, err := uc.findOwned(ctx, session, surveyID)
	if err != nil {
		return nil, err
	}

	next, err := questionnaire.Transition(survey.Status, questionnaire.ActionResubmit, session.Role, uc.resubmitPolicy())
	if err != nil {
		return nil, err
	}

	mergeAnswers(survey, request.Answers)

	now := time.Now()
	set := map[string]interface{}{
		"status":    string(next),
		"answers":   survey.Answers,
		"updatedAt": now,
	}
	if next == questionnaire.StatusSubmitted {
		set["submittedAt"] = now
	}

	applied, err := uc.SurveyRepository.UpdateStatus(ctx, survey.ID, survey.Status, set)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, exceptions.ErrSurveyInvalidTransition(string(survey.Status), string(questionnaire.ActionResubmit))
	}

	prior := survey.Status
	survey.Status = next
	if next == questionnaire.StatusSubmitted {
		survey.SubmittedAt = &now
	}
	survey.UpdatedAt = now

	// The rejection reason stays on the record and in the audit trail; the
	// resubmission does not erase why a prior pass failed.
	uc.recordAudit(ctx, survey.ID, models.AuditActionResubmitted, session.UserID, prior, next, "")
	uc.publishEvent(ctx, survey, models.AuditActionResubmitted, prior, session.UserID)

	tmpl, err := uc.TemplateRepository.FindByID(ctx, survey.TemplateID)
	if err != nil {
		return nil, err
	}
	return responses.NewSurveyDetail(survey, tmpl), nil
}

func (uc *surveyUsecase) ListSurveys(ctx context.Context, session *models.Session, request *requests.ListSurveys) ([]responses.SurveyDetail, int, error) {
	surveys, total, err := uc.SurveyRepository.FindAllScoped(ctx, session, request)
	if err != nil {
		return nil, 0, err
	}

	// Templates are fetched once per distinct id so list progress stays cheap.
	tmplCache := make(map[string]*questionnaire.Template)
	details := make([]responses.SurveyDetail, 0, len(surveys))
	for i := range surveys {
		tmpl, ok := tmplCache[surveys[i].TemplateID]
		if !ok {
			tmpl, err = uc.TemplateRepository.FindByID(ctx, surveys[i].TemplateID)
			if err != nil {
				return nil, 0, err
			}
			tmplCache[surveys[i].TemplateID] = tmpl
		}
		details = append(details, *responses.NewSurveyDetail(&surveys[i], tmpl))
	}
	return details, total, nil
}

func (uc *surveyUsecase) GetStats(ctx context.Context) (*responses.SurveyStats, error) {
	distribution, total, err := uc.SurveyRepository.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.SurveyRepository.CountCreatedSince(ctx, 30)
	if err != nil {
		return nil, err
	}
	return &responses.SurveyStats{
		TotalSurveys:       total,
		StatusDistribution: distribution,
		RecentSurveys:      recent,
	}, nil
}

func (uc *surveyUsecase) UploadAttachment(ctx context.Context, session *models.Session, surveyID string, file multipart.File, fileHeader *multipart.FileHeader, attachmentType, description string) (*models.SurveyAttachment, error) {
	survey, err := uc.findOwned(ctx, session, surveyID)
	if err != nil {
		return nil, err
	}

	maxSize := uc.InternalConfig.App.AttachmentMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSize {
		return nil, exceptions.ErrFileTooLarge(nil)
	}

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if _, ok := allowedAttachmentTypes[contentType]; !ok {
		return nil, exceptions.ErrInvalidFileType(nil)
	}

	objectName := survey.ID + "/" + uuid.NewString() + filepath.Ext(fileHeader.Filename)
	if err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName); err != nil {
		return nil, err
	}

	if attachmentType == "" {
		attachmentType = models.AttachmentOther
	}

	attachment := &models.SurveyAttachment{
		SurveyID:    survey.ID,
		ObjectName:  objectName,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Type:        attachmentType,
		Description: description,
		UploadedBy:  session.UserID,
		UploadedAt:  time.Now(),
	}

	attachmentID, err := uc.AttachmentRepository.CreateAttachment(ctx, attachment)
	if err != nil {
		return nil, err
	}
	attachment.ID = attachmentID
	return attachment, nil
}

func (uc *surveyUsecase) ListAttachments(ctx context.Context, session *models.Session, surveyID string) ([]responses.AttachmentView, error) {
	survey, err := uc.findAccessible(ctx, session, surveyID)
	if err != nil {
		return nil, err
	}

	attachments, err := uc.AttachmentRepository.FindAttachmentsBySurveyID(ctx, survey.ID)
	if err != nil {
		return nil, err
	}

	views := make([]responses.AttachmentView, 0, len(attachments))
	for _, attachment := range attachments {
		view := responses.AttachmentView{SurveyAttachment: attachment}
		url, err := uc.Storage.PresignedDownloadURL(ctx, attachment.ObjectName, attachment.FileName, 15*time.Minute)
		if err == nil {
			view.DownloadURL = url
		}
		views = append(views, view)
	}
	return views, nil
}

func (uc *surveyUsecase) ListAuditLogs(ctx context.Context, session *models.Session, surveyID string) ([]models.SurveyAuditLog, error) {
	survey, err := uc.findAccessible(ctx, session, surveyID)
	if err != nil {
		return nil, err
	}
	return uc.AuditLogRepository.FindAuditLogsBySurveyID(ctx, survey.ID)
}

// findOwned loads the survey and enforces surveyor ownership. Admins bypass
// the ownership check.
func (uc *surveyUsecase) findOwned(ctx context.Context, session *models.Session, surveyID string) (*models.SurveyResponse, error) {
	survey, err := uc.SurveyRepository.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, exceptions.ErrSurveyNotFound(nil)
	}
	if session.Role != constvars.RoleAdmin && survey.SurveyorID != session.UserID {
		return nil, exceptions.ErrSurveyNotOwner()
	}
	return survey, nil
}

// findAccessible loads the survey and enforces read access per role.
func (uc *surveyUsecase) findAccessible(ctx context.Context, session *models.Session, surveyID string) (*models.SurveyResponse, error) {
	survey, err := uc.SurveyRepository.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, exceptions.ErrSurveyNotFound(nil)
	}

	switch session.Role {
	case constvars.RoleAdmin:
		return survey, nil
	case constvars.RoleSurveyor:
		if survey.SurveyorID == session.UserID {
			return survey, nil
		}
	case constvars.RoleVerifier:
		if survey.Status != questionnaire.StatusDraft &&
			(survey.AssignedVerifierID == "" || survey.AssignedVerifierID == session.UserID) {
			return survey, nil
		}
	case constvars.RoleViewer:
		if survey.Status == questionnaire.StatusVerified {
			return survey, nil
		}
	}
	return nil, exceptions.ErrNotMatchRoleType(nil)
}

func (uc *surveyUsecase) recordAudit(ctx context.Context, surveyID, action, userID string, prev, next questionnaire.Status, notes string) {
	err := uc.AuditLogRepository.CreateAuditLog(ctx, &models.SurveyAuditLog{
		SurveyID:       surveyID,
		Action:         action,
		UserID:         userID,
		PreviousStatus: prev,
		NewStatus:      next,
		Notes:          notes,
		Timestamp:      time.Now(),
	})
	if err != nil {
		uc.Log.Error("failed to write survey audit log",
			zap.String("survey_id", surveyID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func (uc *surveyUsecase) publishEvent(ctx context.Context, survey *models.SurveyResponse, action string, prior questionnaire.Status, actorID string) {
	err := uc.EventPublisher.Publish(ctx, &surveyqueue.SurveyEvent{
		EventID:        uuid.NewString(),
		SurveyID:       survey.ID,
		ServiceID:      survey.ServiceID,
		Action:         action,
		PreviousStatus: prior,
		NewStatus:      survey.Status,
		ActorID:        actorID,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		uc.Log.Error("failed to publish survey event",
			zap.String("survey_id", survey.ID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func mergeAnswers(survey *models.SurveyResponse, incoming map[string]interface{}) {
	if survey.Answers == nil {
		survey.Answers = map[string]interface{}{}
	}
	for code, value := range incoming {
		survey.Answers[code] = value
	}
}
