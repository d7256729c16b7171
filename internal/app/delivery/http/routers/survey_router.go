package routers

import (
	"fmt"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/surveys"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSurveyRoutes(router chi.Router, mw *middlewares.Middlewares, surveyController *surveys.SurveyController) {
	router.Use(mw.Authenticate)

	router.Get("/", surveyController.ListSurveys)
	router.With(mw.RequireRoles(constvars.RoleAdmin)).Get("/stats", surveyController.GetStats)

	router.With(mw.RequireRoles(constvars.RoleSurveyor)).
		Post("/", surveyController.CreateSurvey)

	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamSurveyID), surveyController.GetSurveyByID)

	router.With(mw.RequireRoles(constvars.RoleSurveyor)).
		Put(fmt.Sprintf("/{%s}/progress", constvars.URLParamSurveyID), surveyController.SaveProgress)
	router.With(mw.RequireRoles(constvars.RoleSurveyor)).
		Post(fmt.Sprintf("/{%s}/submit", constvars.URLParamSurveyID), surveyController.SubmitSurvey)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).
		Post(fmt.Sprintf("/{%s}/verify", constvars.URLParamSurveyID), surveyController.VerifySurvey)
	router.With(mw.RequireRoles(constvars.RoleSurveyor)).
		Post(fmt.Sprintf("/{%s}/resubmit", constvars.URLParamSurveyID), surveyController.ResubmitSurvey)

	router.With(mw.RequireRoles(constvars.RoleSurveyor)).
		Post(fmt.Sprintf("/{%s}/attachments", constvars.URLParamSurveyID), surveyController.UploadAttachment)
	router.Get(fmt.Sprintf("/{%s}/attachments", constvars.URLParamSurveyID), surveyController.ListAttachments)
	router.Get(fmt.Sprintf("/{%s}/audit-logs", constvars.URLParamSurveyID), surveyController.ListAuditLogs)
}
