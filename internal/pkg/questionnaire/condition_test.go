package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateAbsentAnswer(t *testing.T) {
	answers := AnswerSet{}

	operators := []string{OperatorEquals, OperatorNotEquals, OperatorIn, OperatorNotIn, OperatorContains, "bogus"}
	for _, op := range operators {
		t.Run(op, func(t *testing.T) {
			cond := &Condition{QuestionCode: "Q1", Operator: op, Value: "YES"}
			assert.False(t, Evaluate(cond, answers), "absent answer must fail every operator, including %s", op)
		})
	}

	t.Run("explicit null answer", func(t *testing.T) {
		answers := AnswerSet{"Q1": NullAnswer()}
		cond := &Condition{QuestionCode: "Q1", Operator: OperatorNotEquals, Value: "YES"}
		assert.False(t, Evaluate(cond, answers), "null answer fails not_equals too, fail-closed")
	})
}

func TestEvaluateNilCondition(t *testing.T) {
	assert.True(t, Evaluate(nil, AnswerSet{}), "elements without a condition are always visible")
	assert.True(t, Evaluate(&Condition{}, AnswerSet{}), "condition without question code is treated as absent")
}

func TestEvaluateEquals(t *testing.T) {
	t.Run("scalar equality", func(t *testing.T) {
		answers := AnswerSet{"Q1": ScalarAnswer("YES")}
		assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: "YES"}, answers))
		assert.False(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: "NO"}, answers))
	})

	t.Run("numeric equality across decoded types", func(t *testing.T) {
		answers := AnswerSet{"Q1": ScalarAnswer(float64(3))}
		assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: 3}, answers))
		assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: int64(3)}, answers))
		assert.False(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: 4}, answers))
	})

	t.Run("expected list means membership", func(t *testing.T) {
		answers := AnswerSet{"Q1": ScalarAnswer("B")}
		cond := &Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: []interface{}{"A", "B"}}
		assert.True(t, Evaluate(cond, answers))
	})

	t.Run("list answer matches any element", func(t *testing.T) {
		answers := AnswerSet{"Q1": ListAnswer("X", "B")}
		assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: "B"}, answers))
		assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: []interface{}{"B", "C"}}, answers))
		assert.False(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorEquals, Value: []interface{}{"C", "D"}}, answers))
	})
}

func TestEvaluateNotEquals(t *testing.T) {
	answers := AnswerSet{"Q1": ScalarAnswer("YES")}
	assert.False(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorNotEquals, Value: "YES"}, answers))
	assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorNotEquals, Value: "NO"}, answers))
}

func TestEvaluateIn(t *testing.T) {
	answers := AnswerSet{"Q1": ScalarAnswer("B")}

	t.Run("member", func(t *testing.T) {
		cond := &Condition{QuestionCode: "Q1", Operator: OperatorIn, Value: []interface{}{"A", "B"}}
		assert.True(t, Evaluate(cond, answers))
	})

	t.Run("not a member", func(t *testing.T) {
		cond := &Condition{QuestionCode: "Q1", Operator: OperatorIn, Value: []interface{}{"C"}}
		assert.False(t, Evaluate(cond, answers))
	})

	t.Run("malformed expected value", func(t *testing.T) {
		cond := &Condition{QuestionCode: "Q1", Operator: OperatorIn, Value: "B"}
		assert.False(t, Evaluate(cond, answers))
	})
}

func TestEvaluateNotIn(t *testing.T) {
	answers := AnswerSet{"Q1": ScalarAnswer("B")}

	assert.False(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorNotIn, Value: []interface{}{"A", "B"}}, answers))
	assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorNotIn, Value: []interface{}{"C"}}, answers))

	t.Run("malformed expected value is permissive", func(t *testing.T) {
		cond := &Condition{QuestionCode: "Q1", Operator: OperatorNotIn, Value: "B"}
		assert.True(t, Evaluate(cond, answers))
	})
}

func TestEvaluateContains(t *testing.T) {
	answers := AnswerSet{"Q1": ListAnswer("A", "B")}

	assert.True(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorContains, Value: "A"}, answers))
	assert.False(t, Evaluate(&Condition{QuestionCode: "Q1", Operator: OperatorContains, Value: "C"}, answers))

	t.Run("scalar answer never contains", func(t *testing.T) {
		scalar := AnswerSet{"Q1": ScalarAnswer("A")}
		cond := &Condition{QuestionCode: "Q1", Operator: OperatorContains, Value: "A"}
		assert.False(t, Evaluate(cond, scalar))
	})
}

func TestEvaluateUnknownOperatorFallsBackToEquals(t *testing.T) {
	answers := AnswerSet{"Q1": ScalarAnswer("YES")}
	cond := &Condition{QuestionCode: "Q1", Operator: "matches_roughly", Value: "YES"}
	assert.True(t, Evaluate(cond, answers))
}
