/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

import (
	"strings"

	"github.com/entiql/entiql/pkg/modeldef"
)

// FieldRef is a bound field path over the flattened view of the query
// target: either a direct field, or a relationship field followed by a
// field of the relationship's target declaration.
type FieldRef struct {
	Path      []string
	ValueKind modeldef.ValueKind
	DataKind  modeldef.DataKind
	Target    modeldef.QName
	IsArray   bool
}

func (f FieldRef) String() string { return strings.Join(f.Path, ".") }

// BoundQuery is a parsed query statement validated against one model
// snapshot. It is immutable and safe to run concurrently: each Run
// materializes its own filter tree from the predicate template.
type BoundQuery struct {
	Name        string
	Description string
	Query       string
	Target      modeldef.IDecl
	Params      []string

	predicate predicate
	orders    []orderBy
}

// predicate is the reusable template a BoundQuery keeps between runs;
// filter substitutes parameter values and yields the run's IFilter.
type predicate interface {
	filter(params map[string]interface{}) (IFilter, error)
}

type orderBy struct {
	field FieldRef
	desc  bool
}

func (o orderBy) Field() string { return o.field.String() }
func (o orderBy) IsDesc() bool  { return o.desc }
