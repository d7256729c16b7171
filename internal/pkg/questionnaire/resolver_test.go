package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoSectionTemplate mirrors the screening pattern used by the DESDE-LTC
// residential templates: section B only applies when Q1 in section A says the
// facility offers the service at all.
func twoSectionTemplate() *Template {
	return &Template{
		ID:      "tmpl-1",
		Code:    "RESIDENTIAL_V1",
		Version: "1.0",
		Type:    TemplateTypeResidential,
		Sections: []Section{
			{
				Code:  "SEC_A",
				Name:  "Basic Data",
				Order: 1,
				Questions: []Question{
					{
						Code:       "Q1",
						Text:       "Does this facility provide residential care?",
						AnswerType: AnswerTypeSingleChoice,
						IsRequired: true,
						Order:      1,
						Choices: []Choice{
							{Value: "YES", Label: "Yes", Order: 1},
							{Value: "NO", Label: "No", Order: 2},
						},
					},
				},
			},
			{
				Code:          "SEC_B",
				Name:          "Residential Detail",
				Order:         2,
				ShowCondition: &Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: "YES"},
				Questions: []Question{
					{
						Code:       "Q2",
						Text:       "Current bed capacity",
						AnswerType: AnswerTypeInteger,
						IsRequired: true,
						Order:      1,
					},
				},
			},
		},
	}
}

func TestActiveSections(t *testing.T) {
	tmpl := twoSectionTemplate()

	t.Run("no answers hides the conditional section", func(t *testing.T) {
		active := ActiveSections(tmpl, AnswerSet{})
		if assert.Len(t, active, 1) {
			assert.Equal(t, "SEC_A", active[0].Code)
		}
	})

	t.Run("trigger answer reveals the section in declared order", func(t *testing.T) {
		active := ActiveSections(tmpl, AnswerSet{"Q1": ScalarAnswer("YES")})
		if assert.Len(t, active, 2) {
			assert.Equal(t, "SEC_A", active[0].Code)
			assert.Equal(t, "SEC_B", active[1].Code)
		}
	})

	t.Run("negative answer keeps the section hidden", func(t *testing.T) {
		active := ActiveSections(tmpl, AnswerSet{"Q1": ScalarAnswer("NO")})
		assert.Len(t, active, 1)
	})
}

func TestActiveQuestionsParentShorthand(t *testing.T) {
	section := &Section{
		Code: "SEC_STAFF",
		Questions: []Question{
			{Code: "Q10", Text: "Any psychiatrists on staff?", AnswerType: AnswerTypeBoolean, Order: 1},
			{
				Code:               "Q11",
				Text:               "How many psychiatrists?",
				AnswerType:         AnswerTypeInteger,
				Order:              2,
				ParentQuestionCode: "Q10",
				ShowIfValue:        true,
			},
		},
	}

	t.Run("dependent hidden while parent unanswered", func(t *testing.T) {
		active := ActiveQuestions(section, AnswerSet{})
		if assert.Len(t, active, 1) {
			assert.Equal(t, "Q10", active[0].Code)
		}
	})

	t.Run("dependent shown when trigger matches", func(t *testing.T) {
		active := ActiveQuestions(section, AnswerSet{"Q10": ScalarAnswer(true)})
		assert.Len(t, active, 2)
	})

	t.Run("dependent hidden when trigger differs", func(t *testing.T) {
		active := ActiveQuestions(section, AnswerSet{"Q10": ScalarAnswer(false)})
		assert.Len(t, active, 1)
	})
}

func TestActiveQuestionsExplicitConditionWinsOverShorthand(t *testing.T) {
	section := &Section{
		Questions: []Question{
			{Code: "QA", AnswerType: AnswerTypeText, Order: 1},
			{
				Code:               "QB",
				AnswerType:         AnswerTypeText,
				Order:              2,
				ShowCondition:      &Condition{QuestionCode: "QA", Operator: OperatorEquals, Value: "show"},
				ParentQuestionCode: "QA",
				ShowIfValue:        "something-else",
			},
		},
	}

	active := ActiveQuestions(section, AnswerSet{"QA": ScalarAnswer("show")})
	assert.Len(t, active, 2, "explicit show_condition takes precedence over the shorthand")
}

func TestResolverToleratesDanglingConditionReference(t *testing.T) {
	tmpl := &Template{
		Sections: []Section{
			{
				Code:          "SEC_X",
				ShowCondition: &Condition{QuestionCode: "NOT_IN_TEMPLATE", Operator: OperatorEquals, Value: "YES"},
				Questions:     []Question{{Code: "QX", Order: 1}},
			},
		},
	}

	assert.NotPanics(t, func() {
		active := ActiveSections(tmpl, AnswerSet{})
		assert.Empty(t, active, "dangling reference resolves to unanswered, section stays hidden")
	})
}

func TestResolverNeverShowsOrphanedDependents(t *testing.T) {
	tmpl := twoSectionTemplate()

	// Q2 depends (via its section) on Q1; while Q1 is unanswered no resolution
	// may surface Q2.
	for _, answers := range []AnswerSet{{}, {"Q2": ScalarAnswer(12)}} {
		for _, section := range ActiveSections(tmpl, answers) {
			for _, question := range ActiveQuestions(&section, answers) {
				assert.NotEqual(t, "Q2", question.Code)
			}
		}
	}
}

func TestResolverIsIdempotent(t *testing.T) {
	tmpl := twoSectionTemplate()
	answers := AnswerSet{"Q1": ScalarAnswer("YES")}

	first := ActiveSections(tmpl, answers)
	second := ActiveSections(tmpl, answers)
	assert.Equal(t, first, second)

	firstQ := ActiveQuestions(&tmpl.Sections[0], answers)
	secondQ := ActiveQuestions(&tmpl.Sections[0], answers)
	assert.Equal(t, firstQ, secondQ)

	// Inputs must not be mutated by resolution.
	assert.Len(t, tmpl.Sections, 2)
	assert.Equal(t, AnswerSet{"Q1": ScalarAnswer("YES")}, answers)
}
