package questionnaire

import (
	"github.com/goccy/go-json"
)

// AnswerKind tags the runtime shape of an AnswerValue.
type AnswerKind int

const (
	KindNull AnswerKind = iota
	KindScalar
	KindList
	KindTable
)

// AnswerValue is the tagged union of the shapes an answer may take:
// absent/null, a scalar, an ordered list of scalars (multi-select, order
// reflects selection order), or a table keyed row code -> column code.
// Row/column membership against the question's TableConfig is validated by
// the caller at write time, not here.
type AnswerValue struct {
	Kind   AnswerKind
	Scalar interface{}
	List   []interface{}
	Table  map[string]interface{}
}

// AnswerSet maps question codes to answer values. Keys are question codes
// (stable identifiers), never numeric ids, so templates can be reordered
// without invalidating historical answers.
type AnswerSet map[string]AnswerValue

func NullAnswer() AnswerValue {
	return AnswerValue{Kind: KindNull}
}

func ScalarAnswer(v interface{}) AnswerValue {
	if v == nil {
		return NullAnswer()
	}
	return AnswerValue{Kind: KindScalar, Scalar: v}
}

func ListAnswer(values ...interface{}) AnswerValue {
	return AnswerValue{Kind: KindList, List: values}
}

func TableAnswer(rows map[string]interface{}) AnswerValue {
	return AnswerValue{Kind: KindTable, Table: rows}
}

func (a AnswerValue) IsNull() bool {
	return a.Kind == KindNull
}

// Cell reads one table cell; the second return reports whether both the row
// and the column were present.
func (a AnswerValue) Cell(rowCode, colCode string) (interface{}, bool) {
	if a.Kind != KindTable {
		return nil, false
	}
	row, ok := a.Table[rowCode].(map[string]interface{})
	if !ok {
		return nil, false
	}
	cell, ok := row[colCode]
	return cell, ok
}

// Value returns the plain Go representation used for persistence and JSON.
func (a AnswerValue) Value() interface{} {
	switch a.Kind {
	case KindScalar:
		return a.Scalar
	case KindList:
		return a.List
	case KindTable:
		return a.Table
	default:
		return nil
	}
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value())
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = AnswerValueOf(raw)
	return nil
}

// AnswerValueOf classifies an arbitrary decoded JSON value into the tagged
// union. Objects are treated as tables; everything else scalar.
func AnswerValueOf(raw interface{}) AnswerValue {
	switch v := raw.(type) {
	case nil:
		return NullAnswer()
	case []interface{}:
		return AnswerValue{Kind: KindList, List: v}
	case map[string]interface{}:
		return AnswerValue{Kind: KindTable, Table: v}
	case AnswerValue:
		return v
	default:
		return AnswerValue{Kind: KindScalar, Scalar: v}
	}
}

// AnswerSetOf builds an AnswerSet from a plain code->value map, classifying
// each value. Nil values are kept as explicit nulls.
func AnswerSetOf(raw map[string]interface{}) AnswerSet {
	answers := make(AnswerSet, len(raw))
	for code, value := range raw {
		answers[code] = AnswerValueOf(value)
	}
	return answers
}

// Plain converts back to a code->value map for persistence.
func (s AnswerSet) Plain() map[string]interface{} {
	raw := make(map[string]interface{}, len(s))
	for code, value := range s {
		raw[code] = value.Value()
	}
	return raw
}

// Merge overlays other on top of s and returns the result; s is unchanged.
// Used by save-progress, where a partial answer payload overwrites only the
// codes it carries.
func (s AnswerSet) Merge(other AnswerSet) AnswerSet {
	merged := make(AnswerSet, len(s)+len(other))
	for code, value := range s {
		merged[code] = value
	}
	for code, value := range other {
		merged[code] = value
	}
	return merged
}

// Answered reports whether the code has a present, non-null answer. Presence
// is all that counts: an empty string or empty list is still answered, format
// validation is a separate concern.
func (s AnswerSet) Answered(code string) bool {
	value, ok := s[code]
	return ok && !value.IsNull()
}
