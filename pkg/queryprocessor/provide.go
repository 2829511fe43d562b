/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

import (
	"github.com/entiql/entiql/pkg/instances"
)

// Run evaluates a bound query over the source: every instance matching
// the WHERE predicate is pushed to the callback, in source order, or in
// ORDER BY order when the query sorts.
//
// params must supply a value for every `_$` placeholder of the query.
// If the source implements instances.IRefResolver it is used to follow
// relationship hops; otherwise hop paths have no value and match
// nothing.
func Run(bound *BoundQuery, params map[string]interface{}, source instances.ISource, callback func(instances.IInstance) error) error {
	return runImpl(bound, params, source, callback)
}
