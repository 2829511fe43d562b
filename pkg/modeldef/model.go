/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package modeldef

import (
	"errors"

	"github.com/google/uuid"
)

// # Implements:
//   - IModel
//   - IModelBuilder
type model struct {
	id       string
	decls    map[QName]*decl
	ordered  []QName
	byEntity map[string][]*decl
}

func newModel() *model {
	return &model{
		decls:    make(map[QName]*decl),
		byEntity: make(map[string][]*decl),
	}
}

func (m *model) AddDecl(name QName, kind DeclKind) IDeclBuilder {
	d := newDecl(m, name, kind)
	m.decls[name] = d
	m.ordered = append(m.ordered, name)
	m.byEntity[name.Entity()] = append(m.byEntity[name.Entity()], d)
	return d
}

func (m *model) Build() (IModel, error) {
	v := newValidator(m)
	if err := v.validate(); err != nil {
		return nil, err
	}
	m.id = uuid.NewString()
	return m, nil
}

func (m *model) ID() string { return m.id }

func (m *model) Decl(name QName) IDecl {
	if d := m.DeclByName(name); d != nil {
		return d
	}
	return NullDecl
}

func (m *model) DeclByName(name QName) IDecl {
	if d, ok := m.decls[name]; ok {
		return d
	}
	return nil
}

func (m *model) DeclCount() int {
	return len(m.decls)
}

func (m *model) Decls(cb func(IDecl)) {
	for _, n := range m.ordered {
		cb(m.decls[n])
	}
}

func (m *model) DeclByEntity(entity string) IDecl {
	if dd := m.byEntity[entity]; len(dd) == 1 {
		return dd[0]
	}
	return nil
}

// validator checks the whole declaration batch before a model becomes
// visible. Any error discards the batch.
type validator struct {
	m    *model
	errs []error
}

func newValidator(m *model) *validator {
	return &validator{m: m}
}

func (v *validator) validate() error {
	v.resolveAncestors()
	v.detectCycles()
	if len(v.errs) > 0 {
		// flattening needs a resolved, acyclic inheritance forest
		return errors.Join(v.errs...)
	}
	v.flattenFields()
	v.resolveFieldTargets()
	v.checkIdentity()
	return errors.Join(v.errs...)
}

func (v *validator) resolveAncestors() {
	v.m.Decls(func(id IDecl) {
		d := id.(*decl)
		if d.ancestorName == NullQName {
			return
		}
		anc, ok := v.m.decls[d.ancestorName]
		if !ok {
			v.errs = append(v.errs, ErrUnresolvedSuperType(d.name, d.ancestorName))
			return
		}
		if !d.kind.Extendable() || anc.kind != d.kind {
			v.errs = append(v.errs, ErrIncompatibleExtends(d.name, d.kind, anc.name, anc.kind))
			return
		}
		d.ancestor = anc
	})
}

func (v *validator) detectCycles() {
	v.m.Decls(func(id IDecl) {
		d := id.(*decl)
		slow, fast := d, d
		for fast != nil {
			fast = fast.ancestor
			if fast == nil {
				return
			}
			fast = fast.ancestor
			slow = slow.ancestor
			if fast == slow {
				v.errs = append(v.errs, ErrCyclicInheritance(d.name))
				// break the cycle so flattening terminates for other declarations
				d.ancestor = nil
				return
			}
		}
	})
}

func (v *validator) flattenFields() {
	done := make(map[*decl]bool)

	var flatten func(d *decl)
	flatten = func(d *decl) {
		if done[d] {
			return
		}
		done[d] = true

		d.flat = nil
		d.flatByNm = make(map[string]*field)
		if d.ancestor != nil {
			flatten(d.ancestor)
			d.flat = append(d.flat, d.ancestor.flat...)
			for n, f := range d.ancestor.flatByNm {
				d.flatByNm[n] = f
			}
		}
		for _, f := range d.ownFields {
			if inherited, ok := d.flatByNm[f.name]; ok {
				if !sameShape(inherited, f) {
					v.errs = append(v.errs, ErrFieldShadowTypeMismatch(d.name, f.name, d.ancestor.name))
					continue
				}
				// shadow keeps the ancestor's position
				for i, ff := range d.flat {
					if ff.name == f.name {
						d.flat[i] = f
						break
					}
				}
			} else {
				d.flat = append(d.flat, f)
			}
			d.flatByNm[f.name] = f
		}
	}

	v.m.Decls(func(id IDecl) { flatten(id.(*decl)) })
}

func (v *validator) resolveFieldTargets() {
	v.m.Decls(func(id IDecl) {
		d := id.(*decl)
		for _, f := range d.ownFields {
			switch f.valueKind {
			case ValueKind_Enum:
				t, ok := v.m.decls[f.target]
				if !ok {
					v.errs = append(v.errs, ErrUnresolvedEnumTarget(d.name, f.name, f.target))
				} else if t.kind != DeclKind_Enum {
					v.errs = append(v.errs, ErrInvalidEnumTarget(d.name, f.name, f.target, t.kind))
				}
			case ValueKind_Relationship:
				t, ok := v.m.decls[f.target]
				if !ok {
					v.errs = append(v.errs, ErrUnresolvedRelationshipTarget(d.name, f.name, f.target))
				} else if !t.kind.Instantiable() {
					v.errs = append(v.errs, ErrInvalidRelationshipTarget(d.name, f.name, f.target, t.kind))
				}
			}
		}
	})
}

func (v *validator) checkIdentity() {
	v.m.Decls(func(id IDecl) {
		d := id.(*decl)

		if d.identifiedBy != "" && !d.kind.IdentityAllowed() {
			v.errs = append(v.errs, ErrIdentityNotAllowed(d.name, d.kind))
			return
		}

		// nearest own or inherited `identified by` across the chain
		inherited := ""
		for a := d.ancestor; a != nil; a = a.ancestor {
			if a.identifiedBy != "" {
				inherited = a.identifiedBy
				break
			}
		}

		d.identity = d.identifiedBy
		if d.identity == "" {
			d.identity = inherited
		} else if inherited != "" && inherited != d.identity {
			v.errs = append(v.errs, ErrDuplicateIdentifyingField(d.name, d.identity, inherited))
			return
		}

		if d.identity != "" {
			f, ok := d.flatByNm[d.identity]
			if !ok || f.valueKind != ValueKind_Scalar || f.dataKind != DataKind_String || f.isArray || f.isOptional {
				v.errs = append(v.errs, ErrInvalidIdentifyingField(d.name, d.identity))
				return
			}
		}

		if !d.abstract && d.kind.HasIdentity() && d.identity == "" {
			v.errs = append(v.errs, ErrMissingIdentifyingField(d.name))
		}
	})
}

// New returns empty model builder
func New() IModelBuilder {
	return newModel()
}
