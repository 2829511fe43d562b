/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

type GreaterFilter struct {
	field   FieldRef
	value   interface{}
	orEqual bool
}

func (f GreaterFilter) IsMatch(row IRow) (bool, error) {
	v, ok := row.Value(f.field)
	if !ok {
		return false, nil
	}
	c, err := compareValues(f.field.DataKind, v, f.value)
	if err != nil {
		return false, err
	}
	if f.orEqual {
		return c >= 0, nil
	}
	return c > 0, nil
}
