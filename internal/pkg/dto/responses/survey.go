package responses

import (
	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/questionnaire"
)

// SurveyDetail wraps a survey response with the server-side view the form
// client needs: completion percentage and the currently visible sections
// given the stored answers.
type SurveyDetail struct {
	*models.SurveyResponse
	Progress       int      `json:"progress"`
	ActiveSections []string `json:"activeSections"`
}

func NewSurveyDetail(survey *models.SurveyResponse, tmpl *questionnaire.Template) *SurveyDetail {
	detail := &SurveyDetail{SurveyResponse: survey}
	if tmpl == nil {
		return detail
	}
	answers := survey.AnswerSet()
	detail.Progress = questionnaire.Progress(tmpl, answers)
	for _, section := range questionnaire.ActiveSections(tmpl, answers) {
		detail.ActiveSections = append(detail.ActiveSections, section.Code)
	}
	return detail
}

// AttachmentView pairs stored attachment metadata with a short-lived
// download link.
type AttachmentView struct {
	models.SurveyAttachment
	DownloadURL string `json:"downloadUrl,omitempty"`
}

type SurveyStats struct {
	TotalSurveys       int                  `json:"totalSurveys"`
	StatusDistribution map[string]int       `json:"statusDistribution"`
	RecentSurveys      int                  `json:"recentSurveys"`
}
