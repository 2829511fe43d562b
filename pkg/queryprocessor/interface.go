/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 *
 * * @author Michael Saigachenko
 */

package queryprocessor

import (
	"github.com/entiql/entiql/pkg/instances"
)

// IFilter is a materialized predicate node: parameters are already
// substituted, comparisons hold concrete operand values.
type IFilter interface {
	IsMatch(row IRow) (bool, error)
}

// IRow is a view over one candidate instance during evaluation. Value
// follows the field reference, resolving at most one relationship hop,
// and reports false when any step of the path has no value.
type IRow interface {
	Instance() instances.IInstance
	Value(f FieldRef) (interface{}, bool)
}
