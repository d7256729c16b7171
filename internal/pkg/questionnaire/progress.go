package questionnaire

import "math"

// Progress derives the completion percentage from required-question coverage
// among active questions only: inactive sections and questions never count
// toward the denominator. A template with no active required questions is 0%,
// not 100%. Presence of an answer is all that counts; format validation is
// out of scope here.
func Progress(tmpl *Template, answers AnswerSet) int {
	totalRequired := 0
	answeredRequired := 0

	for _, section := range ActiveSections(tmpl, answers) {
		for _, question := range ActiveQuestions(&section, answers) {
			if !question.IsRequired {
				continue
			}
			totalRequired++
			if answers.Answered(question.Code) {
				answeredRequired++
			}
		}
	}

	if totalRequired == 0 {
		return 0
	}
	return int(math.Round(float64(answeredRequired) / float64(totalRequired) * 100))
}
