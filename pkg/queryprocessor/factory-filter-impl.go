/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

import (
	"github.com/entiql/entiql/pkg/queries"
)

type andPredicate struct {
	args []predicate
}

func (p andPredicate) filter(params map[string]interface{}) (IFilter, error) {
	filters, err := filtersOf(p.args, params)
	if err != nil {
		return nil, err
	}
	return AndFilter{filters: filters}, nil
}

type orPredicate struct {
	args []predicate
}

func (p orPredicate) filter(params map[string]interface{}) (IFilter, error) {
	filters, err := filtersOf(p.args, params)
	if err != nil {
		return nil, err
	}
	return OrFilter{filters: filters}, nil
}

func filtersOf(args []predicate, params map[string]interface{}) ([]IFilter, error) {
	filters := make([]IFilter, len(args))
	for i, a := range args {
		f, err := a.filter(params)
		if err != nil {
			return nil, err
		}
		filters[i] = f
	}
	return filters, nil
}

// cmpPredicate is one comparison of the template. Literal operands are
// coerced once at bind, parameter operands at each run.
type cmpPredicate struct {
	op      string
	field   FieldRef
	literal interface{}
	param   string
}

func (p cmpPredicate) filter(params map[string]interface{}) (IFilter, error) {
	value := p.literal
	if p.param != "" {
		v, ok := params[p.param]
		if !ok {
			return nil, errMissingParameter(p.param)
		}
		coerced, err := coerceOperand(p.field, v)
		if err != nil {
			return nil, err
		}
		value = coerced
	}

	switch p.op {
	case queries.OpEq:
		return EqualsFilter{field: p.field, value: value}, nil
	case queries.OpNe:
		return NotEqualsFilter{field: p.field, value: value}, nil
	case queries.OpGt:
		return GreaterFilter{field: p.field, value: value}, nil
	case queries.OpGe:
		return GreaterFilter{field: p.field, value: value, orEqual: true}, nil
	case queries.OpLt:
		return LessFilter{field: p.field, value: value}, nil
	case queries.OpLe:
		return LessFilter{field: p.field, value: value, orEqual: true}, nil
	}
	return nil, errWrongType(p.field.String(), p.op)
}
