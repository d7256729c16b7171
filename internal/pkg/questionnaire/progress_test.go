package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressConditionalScenario(t *testing.T) {
	tmpl := twoSectionTemplate()

	t.Run("no answers", func(t *testing.T) {
		assert.Equal(t, 0, Progress(tmpl, AnswerSet{}))
	})

	t.Run("trigger answered, dependent pending", func(t *testing.T) {
		answers := AnswerSet{"Q1": ScalarAnswer("YES")}
		assert.Equal(t, 50, Progress(tmpl, answers), "1 of 2 required active questions answered")
	})

	t.Run("all active required questions answered", func(t *testing.T) {
		answers := AnswerSet{"Q1": ScalarAnswer("YES"), "Q2": ScalarAnswer("anything")}
		assert.Equal(t, 100, Progress(tmpl, answers))
	})

	t.Run("negative trigger removes dependent from denominator", func(t *testing.T) {
		answers := AnswerSet{"Q1": ScalarAnswer("NO")}
		assert.Equal(t, 100, Progress(tmpl, answers), "section B inactive, Q1 alone counts and is answered")
	})
}

func TestProgressNoRequiredQuestions(t *testing.T) {
	tmpl := &Template{
		Sections: []Section{
			{Code: "S", Questions: []Question{{Code: "Q1", IsRequired: false}}},
		},
	}
	assert.Equal(t, 0, Progress(tmpl, AnswerSet{}), "zero denominator is 0, not 100")
}

func TestProgressEmptyStringCountsAsAnswered(t *testing.T) {
	tmpl := &Template{
		Sections: []Section{
			{Code: "S", Questions: []Question{{Code: "Q1", IsRequired: true}}},
		},
	}
	answers := AnswerSet{"Q1": ScalarAnswer("")}
	assert.Equal(t, 100, Progress(tmpl, answers), "presence counts, format validation is a separate concern")
}

func TestProgressRounding(t *testing.T) {
	tmpl := &Template{
		Sections: []Section{
			{Code: "S", Questions: []Question{
				{Code: "Q1", IsRequired: true},
				{Code: "Q2", IsRequired: true},
				{Code: "Q3", IsRequired: true},
			}},
		},
	}
	answers := AnswerSet{"Q1": ScalarAnswer("a")}
	assert.Equal(t, 33, Progress(tmpl, answers))

	answers["Q2"] = ScalarAnswer("b")
	assert.Equal(t, 67, Progress(tmpl, answers), "rounded to nearest, not truncated")
}

func TestProgressMonotonicAsAnswersAccumulate(t *testing.T) {
	tmpl := &Template{
		Sections: []Section{
			{Code: "S", Questions: []Question{
				{Code: "Q1", IsRequired: true},
				{Code: "Q2", IsRequired: true},
				{Code: "Q3", IsRequired: false},
				{Code: "Q4", IsRequired: true},
			}},
		},
	}

	answers := AnswerSet{}
	previous := Progress(tmpl, answers)
	for _, code := range []string{"Q3", "Q1", "Q4", "Q2"} {
		answers[code] = ScalarAnswer("x")
		current := Progress(tmpl, answers)
		assert.GreaterOrEqual(t, current, previous, "adding %s must not decrease progress", code)
		previous = current
	}
	assert.Equal(t, 100, previous)
}
