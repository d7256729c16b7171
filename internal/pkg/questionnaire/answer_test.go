package questionnaire

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestAnswerValueClassification(t *testing.T) {
	assert.Equal(t, KindNull, AnswerValueOf(nil).Kind)
	assert.Equal(t, KindScalar, AnswerValueOf("text").Kind)
	assert.Equal(t, KindScalar, AnswerValueOf(3.14).Kind)
	assert.Equal(t, KindScalar, AnswerValueOf(true).Kind)
	assert.Equal(t, KindList, AnswerValueOf([]interface{}{"A", "B"}).Kind)
	assert.Equal(t, KindTable, AnswerValueOf(map[string]interface{}{"row": map[string]interface{}{"col": 1}}).Kind)
}

func TestAnswerSetJSONRoundTrip(t *testing.T) {
	payload := []byte(`{
		"Q1": "YES",
		"Q2": ["A", "C"],
		"Q3": {"PSYCHIATRIST": {"COUNT": 2, "FULL_TIME": 1}},
		"Q4": null
	}`)

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(payload, &raw))
	answers := AnswerSetOf(raw)

	assert.Equal(t, KindScalar, answers["Q1"].Kind)
	assert.Equal(t, KindList, answers["Q2"].Kind)
	assert.Equal(t, []interface{}{"A", "C"}, answers["Q2"].List, "selection order survives decoding")
	assert.Equal(t, KindTable, answers["Q3"].Kind)
	assert.True(t, answers["Q4"].IsNull())

	cell, ok := answers["Q3"].Cell("PSYCHIATRIST", "COUNT")
	assert.True(t, ok)
	assert.Equal(t, float64(2), cell)

	_, ok = answers["Q3"].Cell("NURSE", "COUNT")
	assert.False(t, ok)
}

func TestAnswerValueUnmarshalJSON(t *testing.T) {
	var value AnswerValue
	assert.NoError(t, json.Unmarshal([]byte(`["B","A"]`), &value))
	assert.Equal(t, KindList, value.Kind)

	encoded, err := json.Marshal(value)
	assert.NoError(t, err)
	assert.JSONEq(t, `["B","A"]`, string(encoded))
}

func TestAnswerSetMerge(t *testing.T) {
	base := AnswerSet{
		"Q1": ScalarAnswer("YES"),
		"Q2": ScalarAnswer(1),
	}
	patch := AnswerSet{
		"Q2": ScalarAnswer(2),
		"Q3": ListAnswer("A"),
	}

	merged := base.Merge(patch)
	assert.Equal(t, ScalarAnswer("YES"), merged["Q1"])
	assert.Equal(t, ScalarAnswer(2), merged["Q2"], "patch overwrites overlapping codes")
	assert.Equal(t, ListAnswer("A"), merged["Q3"])
	assert.Equal(t, ScalarAnswer(1), base["Q2"], "merge never mutates the receiver")
}

func TestAnswered(t *testing.T) {
	answers := AnswerSet{
		"Q1": ScalarAnswer(""),
		"Q2": NullAnswer(),
	}
	assert.True(t, answers.Answered("Q1"), "empty string is still an answer")
	assert.False(t, answers.Answered("Q2"))
	assert.False(t, answers.Answered("Q3"))
}
