/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Michael Saigachenko
 */

package queryprocessor

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/entiql/entiql/pkg/instances"
)

type row struct {
	inst     instances.IInstance
	resolver instances.IRefResolver
}

func (r row) Instance() instances.IInstance { return r.inst }

func (r row) Value(f FieldRef) (interface{}, bool) {
	v := r.inst.Value(f.Path[0])
	if v == nil {
		return nil, false
	}
	if len(f.Path) == 1 {
		return v, true
	}

	ref, ok := v.(instances.Ref)
	if !ok || r.resolver == nil {
		return nil, false
	}
	target := r.resolver.Resolve(ref)
	if target == nil {
		return nil, false
	}
	if v = target.Value(f.Path[1]); v == nil {
		return nil, false
	}
	return v, true
}

func runImpl(bound *BoundQuery, params map[string]interface{}, source instances.ISource, callback func(instances.IInstance) error) error {
	for _, p := range bound.Params {
		if _, ok := params[p]; !ok {
			return errMissingParameter(p)
		}
	}

	var filter IFilter
	if bound.predicate != nil {
		f, err := bound.predicate.filter(params)
		if err != nil {
			return err
		}
		filter = f
	}

	resolver, _ := source.(instances.IRefResolver)

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("run «%s»: %s", bound.Name, bound.Query))
	}

	if len(bound.orders) == 0 {
		return source.Instances(func(inst instances.IInstance) error {
			r := row{inst: inst, resolver: resolver}
			if filter != nil {
				match, err := filter.IsMatch(r)
				if err != nil {
					return err
				}
				if !match {
					return nil
				}
			}
			return callback(inst)
		})
	}

	// ORDER BY materializes the matching rows before sorting
	rows := make([]row, 0)
	err := source.Instances(func(inst instances.IInstance) error {
		r := row{inst: inst, resolver: resolver}
		if filter != nil {
			match, err := filter.IsMatch(r)
			if err != nil {
				return err
			}
			if !match {
				return nil
			}
		}
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		return err
	}

	slices.SortStableFunc(rows, func(a, b row) bool {
		return compareRows(a, b, bound.orders) < 0
	})

	for _, r := range rows {
		if err := callback(r.inst); err != nil {
			return err
		}
	}
	return nil
}
