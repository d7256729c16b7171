package surveys

import (
	"context"
	"net/http"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SurveyController struct {
	Log            *zap.Logger
	SurveyUsecase  SurveyUsecase
	InternalConfig *config.InternalConfig
}

func NewSurveyController(logger *zap.Logger, surveyUsecase SurveyUsecase, internalConfig *config.InternalConfig) *SurveyController {
	return &SurveyController{
		Log:            logger,
		SurveyUsecase:  surveyUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *SurveyController) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSurvey)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.CreateSurvey(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSurveySuccessMessage, result)
}

func (ctrl *SurveyController) GetSurveyByID(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)
	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.GetSurveyByID(ctx, session, surveyID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSurveySuccessMessage, result)
}

func (ctrl *SurveyController) SaveProgress(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)

	request := new(requests.SaveSurveyProgress)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.SaveProgress(ctx, session, surveyID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveProgressSuccessMessage, result)
}

func (ctrl *SurveyController) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)

	request := new(requests.SubmitSurvey)
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.SubmitSurvey(ctx, session, surveyID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitSurveySuccessMessage, result)
}

func (ctrl *SurveyController) VerifySurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)

	request := new(requests.VerifySurvey)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.VerifySurvey(ctx, session, surveyID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifySurveySuccessMessage, result)
}

func (ctrl *SurveyController) ResubmitSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)

	request := new(requests.ResubmitSurvey)
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.ResubmitSurvey(ctx, session, surveyID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResubmitSurveySuccessMessage, result)
}

func (ctrl *SurveyController) ListSurveys(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListSurveys{
		Pagination: utils.ParsePagination(r),
		Status:     r.URL.Query().Get(constvars.QueryParamStatus),
		ServiceID:  r.URL.Query().Get("serviceId"),
		Search:     r.URL.Query().Get(constvars.QueryParamSearch),
	}

	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.SurveyUsecase.ListSurveys(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetSurveysSuccessMessage, pagination, result)
}

func (ctrl *SurveyController) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.GetStats(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSurveysSuccessMessage, result)
}

func (ctrl *SurveyController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)

	maxSize := ctrl.InternalConfig.App.AttachmentMaxUploadSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1024)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	defer file.Close()

	attachmentType := r.FormValue("type")
	description := r.FormValue("description")

	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.UploadAttachment(ctx, session, surveyID, file, fileHeader, attachmentType, description)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, result)
}

func (ctrl *SurveyController) ListAttachments(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)
	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.ListAttachments(ctx, session, surveyID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttachmentsSuccessMessage, result)
}

func (ctrl *SurveyController) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, constvars.URLParamSurveyID)
	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.ListAuditLogs(ctx, session, surveyID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAuditLogsSuccessMessage, result)
}
