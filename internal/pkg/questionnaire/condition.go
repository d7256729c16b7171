package questionnaire

// Condition operators.
const (
	OperatorEquals    = "equals"
	OperatorNotEquals = "not_equals"
	OperatorIn        = "in"
	OperatorNotIn     = "not_in"
	OperatorContains  = "contains"
)

// Condition is a declarative visibility rule: the gated element is shown when
// the referenced question's answer satisfies the operator against Value.
// QuestionCode must reference a question earlier in evaluation order.
type Condition struct {
	QuestionCode string      `json:"question_code" bson:"questionCode"`
	Operator     string      `json:"operator" bson:"operator"`
	Value        interface{} `json:"value" bson:"value"`
}

// Evaluate reports whether the condition holds against the collected answers.
//
// A nil condition always holds. An absent or null prerequisite answer fails
// the condition for every operator, including not_equals: an unanswered
// prerequisite hides its dependents rather than revealing them. Malformed
// conditions (unknown operator, missing question code) degrade to equals
// semantics or to hidden instead of raising, so template authoring mistakes
// never break rendering.
func Evaluate(cond *Condition, answers AnswerSet) bool {
	if cond == nil || cond.QuestionCode == "" {
		return true
	}

	answer, ok := answers[cond.QuestionCode]
	if !ok || answer.IsNull() {
		return false
	}

	switch cond.Operator {
	case OperatorEquals, "":
		return answerMatches(answer, cond.Value)
	case OperatorNotEquals:
		return !answerMatches(answer, cond.Value)
	case OperatorIn:
		expected, ok := cond.Value.([]interface{})
		if !ok {
			return false
		}
		return answer.Kind == KindScalar && scalarIn(answer.Scalar, expected)
	case OperatorNotIn:
		expected, ok := cond.Value.([]interface{})
		if !ok {
			return true
		}
		return !(answer.Kind == KindScalar && scalarIn(answer.Scalar, expected))
	case OperatorContains:
		if answer.Kind != KindList {
			return false
		}
		return scalarIn(cond.Value, answer.List)
	default:
		// Unknown operators fall back to equals rather than erroring out.
		return answerMatches(answer, cond.Value)
	}
}

// answerMatches implements equals semantics over the answer shapes: a list
// expected value matches when the answer (or, for list answers, any element)
// is a member; a scalar expected value matches on equality, or membership for
// list answers.
func answerMatches(answer AnswerValue, expected interface{}) bool {
	if expectedList, ok := expected.([]interface{}); ok {
		if answer.Kind == KindList {
			for _, v := range answer.List {
				if scalarIn(v, expectedList) {
					return true
				}
			}
			return false
		}
		return scalarIn(answer.Scalar, expectedList)
	}

	if answer.Kind == KindList {
		return scalarIn(expected, answer.List)
	}
	return scalarEquals(answer.Scalar, expected)
}

func scalarIn(value interface{}, list []interface{}) bool {
	for _, candidate := range list {
		if scalarEquals(value, candidate) {
			return true
		}
	}
	return false
}

// scalarEquals compares two scalars, normalizing the numeric types JSON and
// BSON decoding produce so 2, int64(2) and 2.0 compare equal.
func scalarEquals(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	if na, ok := toFloat(a); ok {
		if nb, ok := toFloat(b); ok {
			return na == nb
		}
		return false
	}
	return a == b
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
