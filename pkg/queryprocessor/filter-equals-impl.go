/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

import (
	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/modeldef"
)

type EqualsFilter struct {
	field FieldRef
	value interface{}
}

func (f EqualsFilter) IsMatch(row IRow) (bool, error) {
	v, ok := row.Value(f.field)
	if !ok {
		return false, nil
	}
	return equals(f.field, v, f.value)
}

// NotEqualsFilter is not the negation of EqualsFilter: a field without
// a value matches neither.
type NotEqualsFilter struct {
	field FieldRef
	value interface{}
}

func (f NotEqualsFilter) IsMatch(row IRow) (bool, error) {
	v, ok := row.Value(f.field)
	if !ok {
		return false, nil
	}
	match, err := equals(f.field, v, f.value)
	if err != nil {
		return false, err
	}
	return !match, nil
}

func equals(field FieldRef, v, operand interface{}) (bool, error) {
	switch field.ValueKind {
	case modeldef.ValueKind_Relationship:
		ref, ok := v.(instances.Ref)
		if !ok {
			return false, errWrongType(field.String(), v)
		}
		return refEquals(ref, operand), nil
	case modeldef.ValueKind_Scalar:
		if field.DataKind == modeldef.DataKind_Boolean {
			b, ok := v.(bool)
			if !ok {
				return false, errWrongType(field.String(), v)
			}
			return b == operand.(bool), nil
		}
	}
	c, err := compareValues(field.DataKind, v, operand)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}
