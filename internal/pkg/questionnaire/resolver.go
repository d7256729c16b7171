package questionnaire

// ActiveSections filters the template's sections down to the ones whose
// visibility condition holds against the current answers. Declared order is
// preserved; sections without a condition are always active. A condition that
// references a question code absent from the template simply evaluates as
// unanswered, hiding the section instead of failing.
func ActiveSections(tmpl *Template, answers AnswerSet) []Section {
	active := make([]Section, 0, len(tmpl.Sections))
	for _, section := range tmpl.Sections {
		if Evaluate(section.ShowCondition, answers) {
			active = append(active, section)
		}
	}
	return active
}

// ActiveQuestions filters a section's questions down to the currently visible
// ones, preserving declared order. A question is active when its effective
// condition (explicit condition, or the parent-question shorthand normalized
// into one) holds; questions with neither are always active.
func ActiveQuestions(section *Section, answers AnswerSet) []Question {
	active := make([]Question, 0, len(section.Questions))
	for _, question := range section.Questions {
		if Evaluate(question.EffectiveCondition(), answers) {
			active = append(active, question)
		}
	}
	return active
}
