/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

import (
	"strings"
	"time"

	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/modeldef"
)

// coerceOperand converts a literal or a caller-supplied parameter value
// to the canonical runtime type of the referenced field. ErrWrongType if
// the value can not serve the field's kind.
func coerceOperand(f FieldRef, v interface{}) (interface{}, error) {
	switch f.ValueKind {
	case modeldef.ValueKind_Enum:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case modeldef.ValueKind_Relationship:
		switch o := v.(type) {
		case instances.Ref:
			return o, nil
		case string:
			return o, nil
		}
	case modeldef.ValueKind_Scalar:
		switch f.DataKind {
		case modeldef.DataKind_String:
			if s, ok := v.(string); ok {
				return s, nil
			}
		case modeldef.DataKind_Integer, modeldef.DataKind_Long:
			if i, ok := asInt64(v); ok {
				return i, nil
			}
		case modeldef.DataKind_Double:
			if d, ok := asFloat64(v); ok {
				return d, nil
			}
		case modeldef.DataKind_Boolean:
			if b, ok := v.(bool); ok {
				return b, nil
			}
		case modeldef.DataKind_DateTime:
			switch o := v.(type) {
			case time.Time:
				return o, nil
			case string:
				t, err := time.Parse(time.RFC3339, o)
				if err != nil {
					return nil, errWrongType(f.String(), v)
				}
				return t, nil
			}
		}
	}
	return nil, errWrongType(f.String(), v)
}

func asInt64(v interface{}) (int64, bool) {
	switch i := v.(type) {
	case int:
		return int64(i), true
	case int32:
		return int64(i), true
	case int64:
		return i, true
	case float64:
		return int64(i), true
	}
	return 0, false
}

func asFloat64(v interface{}) (float64, bool) {
	switch d := v.(type) {
	case float64:
		return d, true
	case float32:
		return float64(d), true
	case int:
		return float64(d), true
	case int32:
		return float64(d), true
	case int64:
		return float64(d), true
	}
	return 0, false
}

// compareValues orders a field value against a coerced operand of the
// same kind. Boolean and relationship values have no order and are
// handled by the equality filters directly.
func compareValues(kind modeldef.DataKind, field, operand interface{}) (int, error) {
	switch kind {
	case modeldef.DataKind_String, modeldef.DataKind_null:
		f, ok := field.(string)
		if !ok {
			return 0, errWrongType("", field)
		}
		return strings.Compare(f, operand.(string)), nil
	case modeldef.DataKind_Integer, modeldef.DataKind_Long:
		f, ok := asInt64(field)
		if !ok {
			return 0, errWrongType("", field)
		}
		o := operand.(int64)
		switch {
		case f < o:
			return -1, nil
		case f > o:
			return 1, nil
		}
		return 0, nil
	case modeldef.DataKind_Double:
		f, ok := asFloat64(field)
		if !ok {
			return 0, errWrongType("", field)
		}
		o := operand.(float64)
		switch {
		case f < o:
			return -1, nil
		case f > o:
			return 1, nil
		}
		return 0, nil
	case modeldef.DataKind_DateTime:
		f, ok := field.(time.Time)
		if !ok {
			return 0, errWrongType("", field)
		}
		return f.Compare(operand.(time.Time)), nil
	}
	return 0, errWrongType("", field)
}

// refEquals matches a relationship value against a full reference or a
// bare identity.
func refEquals(field instances.Ref, operand interface{}) bool {
	switch o := operand.(type) {
	case instances.Ref:
		return field == o
	case string:
		return field.ID == o
	}
	return false
}
