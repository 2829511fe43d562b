/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Michael Saigachenko
 */

package queryprocessor

import (
	"fmt"

	"github.com/entiql/entiql/pkg/modeldef"
	"github.com/entiql/entiql/pkg/queries"
)

// Bind validates a parsed query statement against a model snapshot and
// returns a reusable BoundQuery. Every field path, operator and literal
// is checked here, so Run only deals with values.
func Bind(q *queries.QueryStmt, model modeldef.IModel) (*BoundQuery, error) {
	b := bindContext{model: model}

	target, err := b.target(q.Select.Target)
	if err != nil {
		return nil, err
	}
	b.decl = target

	bound := &BoundQuery{
		Name:        q.GetName(),
		Description: q.Description,
		Query:       q.Select.String(),
		Target:      target,
		Params:      q.Select.Parameters(),
	}

	if q.Select.Where != nil {
		bound.predicate, err = b.expression(q.Select.Where)
		if err != nil {
			return nil, err
		}
	}

	for _, o := range q.Select.OrderBy {
		f, err := b.field(o.Field)
		if err != nil {
			return nil, err
		}
		if f.ValueKind != modeldef.ValueKind_Scalar || !f.DataKind.IsOrdered() {
			return nil, errIncompatibleComparison("ORDER BY", f.String(), "field has no order")
		}
		bound.orders = append(bound.orders, orderBy{field: f, desc: o.Descending()})
	}

	return bound, nil
}

type bindContext struct {
	model modeldef.IModel
	decl  modeldef.IDecl
}

// target resolves the SELECT target: a dotted name is exact, a bare
// entity name must be unique across the model's namespaces.
func (b *bindContext) target(name queries.QualifiedName) (modeldef.IDecl, error) {
	var d modeldef.IDecl
	if len(name.Parts) == 1 {
		entity := string(name.Parts[0])
		d = b.model.DeclByEntity(entity)
		if d == nil {
			if b.countByEntity(entity) > 1 {
				return nil, errAmbiguousType(entity, b.countByEntity(entity))
			}
			return nil, errUnknownType(entity)
		}
	} else {
		qn, err := modeldef.ParseQName(name.String())
		if err != nil {
			return nil, errUnknownType(name.String())
		}
		d = b.model.DeclByName(qn)
		if d == nil {
			return nil, errUnknownType(name.String())
		}
	}
	if !d.Kind().Instantiable() {
		return nil, errNotSelectable(name.String())
	}
	if d.Abstract() {
		return nil, errAbstractQueryTarget(name.String())
	}
	return d, nil
}

func (b *bindContext) countByEntity(entity string) int {
	count := 0
	b.model.Decls(func(d modeldef.IDecl) {
		if d.QName().Entity() == entity {
			count++
		}
	})
	return count
}

// field resolves a dotted path against the target's flattened view.
// A two-part path hops through a non-array relationship field into the
// flattened view of the relationship's target.
func (b *bindContext) field(path queries.FieldPath) (FieldRef, error) {
	if len(path.Parts) > 2 {
		return FieldRef{}, errUnknownField(b.decl.QName().String(), path.String())
	}

	f := b.decl.Field(string(path.Parts[0]))
	if f == nil {
		return FieldRef{}, errUnknownField(b.decl.QName().String(), path.String())
	}

	if len(path.Parts) == 1 {
		return FieldRef{
			Path:      []string{f.Name()},
			ValueKind: f.ValueKind(),
			DataKind:  f.DataKind(),
			Target:    f.Target(),
			IsArray:   f.IsArray(),
		}, nil
	}

	if f.ValueKind() != modeldef.ValueKind_Relationship || f.IsArray() {
		return FieldRef{}, errUnknownField(b.decl.QName().String(), path.String())
	}
	hop := b.model.Decl(f.Target()).Field(string(path.Parts[1]))
	if hop == nil {
		return FieldRef{}, errUnknownField(f.Target().String(), path.String())
	}
	return FieldRef{
		Path:      []string{f.Name(), hop.Name()},
		ValueKind: hop.ValueKind(),
		DataKind:  hop.DataKind(),
		Target:    hop.Target(),
		IsArray:   hop.IsArray(),
	}, nil
}

// expression folds the flat AND/OR chain left to right: connectives
// share one precedence level.
func (b *bindContext) expression(e *queries.Expression) (predicate, error) {
	acc, err := b.term(&e.First)
	if err != nil {
		return nil, err
	}
	for i := range e.Rest {
		next, err := b.term(&e.Rest[i].Term)
		if err != nil {
			return nil, err
		}
		if e.Rest[i].Op == queries.OpAnd {
			acc = andPredicate{args: []predicate{acc, next}}
		} else {
			acc = orPredicate{args: []predicate{acc, next}}
		}
	}
	return acc, nil
}

func (b *bindContext) term(t *queries.Term) (predicate, error) {
	if t.Paren != nil {
		return b.expression(t.Paren)
	}
	return b.comparison(t.Cmp)
}

func (b *bindContext) comparison(c *queries.Comparison) (predicate, error) {
	f, err := b.field(c.Field)
	if err != nil {
		return nil, err
	}

	if f.IsArray {
		return nil, errIncompatibleComparison(c.Op, f.String(), "array fields can not be compared")
	}
	switch c.Op {
	case queries.OpLt, queries.OpLe, queries.OpGt, queries.OpGe:
		if f.ValueKind != modeldef.ValueKind_Scalar || !f.DataKind.IsOrdered() {
			return nil, errIncompatibleComparison(c.Op, f.String(), "field has no order")
		}
	}

	p := cmpPredicate{op: c.Op, field: f}
	if c.Operand.Param != nil {
		p.param = string(*c.Operand.Param)
		return p, nil
	}

	p.literal, err = coerceOperand(f, literalValue(c.Operand))
	if err != nil {
		return nil, errIncompatibleComparison(c.Op, f.String(), fmt.Sprintf("literal %s does not fit the field", c.Operand.String()))
	}
	if f.ValueKind == modeldef.ValueKind_Enum {
		if err := b.checkEnumValue(c.Op, f, p.literal.(string)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (b *bindContext) checkEnumValue(op string, f FieldRef, value string) error {
	for _, v := range b.model.Decl(f.Target).EnumValues() {
		if v == value {
			return nil
		}
	}
	return errIncompatibleComparison(op, f.String(), fmt.Sprintf("«%s» is not a value of %v", value, f.Target))
}

func literalValue(o queries.Operand) interface{} {
	switch {
	case o.Str != nil:
		return *o.Str
	case o.Float != nil:
		return *o.Float
	case o.Int != nil:
		return *o.Int
	case o.Bool != nil:
		return bool(*o.Bool)
	}
	return nil
}
