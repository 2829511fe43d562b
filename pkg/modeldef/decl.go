/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package modeldef

import "fmt"

// # Implements:
//   - IDecl
//   - IDeclBuilder
type decl struct {
	model        *model
	name         QName
	kind         DeclKind
	abstract     bool
	ancestorName QName
	ancestor     *decl
	identifiedBy string
	ownFields    []*field
	ownNames     map[string]*field
	enumValues   []string
	decorators   []Decorator

	// derived on Build
	flat     []*field
	flatByNm map[string]*field
	identity string
}

func newDecl(model *model, name QName, kind DeclKind) *decl {
	if name == NullQName {
		panic(fmt.Errorf("declaration name cannot be empty: %w", ErrMissedError))
	}
	if ok, err := ValidQName(name); !ok {
		panic(fmt.Errorf("invalid declaration name «%v»: %w", name, err))
	}
	if model.DeclByName(name) != nil {
		panic(fmt.Errorf("declaration name «%s» already used: %w", name, ErrNameUniqueViolation))
	}
	return &decl{
		model:    model,
		name:     name,
		kind:     kind,
		ownNames: make(map[string]*field),
	}
}

func (d *decl) Model() IModel { return d.model }

func (d *decl) QName() QName { return d.name }

func (d *decl) Kind() DeclKind { return d.kind }

func (d *decl) Abstract() bool { return d.abstract }

func (d *decl) Ancestor() IDecl {
	if d.ancestor == nil {
		return nil
	}
	return d.ancestor
}

func (d *decl) IdentifyingField() string { return d.identity }

func (d *decl) Field(name string) IField {
	if f, ok := d.flatByNm[name]; ok {
		return f
	}
	return nil
}

func (d *decl) FieldCount() int { return len(d.flat) }

func (d *decl) Fields(cb func(IField)) {
	for _, f := range d.flat {
		cb(f)
	}
}

func (d *decl) OwnFields(cb func(IField)) {
	for _, f := range d.ownFields {
		cb(f)
	}
}

func (d *decl) EnumValues() []string { return d.enumValues }

func (d *decl) Decorators() []Decorator { return d.decorators }

func (d *decl) SetAbstract() IDeclBuilder {
	d.abstract = true
	return d
}

func (d *decl) SetAncestor(name QName) IDeclBuilder {
	d.ancestorName = name
	return d
}

func (d *decl) SetIdentifiedBy(field string) IDeclBuilder {
	d.identifiedBy = field
	return d
}

func (d *decl) AddScalarField(name string, kind DataKind, isArray, isOptional bool) IDeclBuilder {
	d.addField(newScalarField(name, kind, isArray, isOptional))
	return d
}

func (d *decl) AddEnumField(name string, target QName, isArray, isOptional bool) IDeclBuilder {
	d.addField(newEnumField(name, target, isArray, isOptional))
	return d
}

func (d *decl) AddRefField(name string, target QName, isArray, isOptional bool) IDeclBuilder {
	d.addField(newRefField(name, target, isArray, isOptional))
	return d
}

func (d *decl) AddEnumValue(value string) IDeclBuilder {
	if ok, err := ValidIdent(value); !ok {
		panic(fmt.Errorf("invalid enum value «%s.%s»: %w", d.name, value, err))
	}
	d.enumValues = append(d.enumValues, value)
	return d
}

func (d *decl) AddDecorator(key, value string) IDeclBuilder {
	d.decorators = append(d.decorators, Decorator{Key: key, Value: value})
	return d
}

func (d *decl) addField(f *field) {
	if ok, err := ValidIdent(f.name); !ok {
		panic(fmt.Errorf("invalid field name «%v.%s»: %w", d.name, f.name, err))
	}
	if _, ok := d.ownNames[f.name]; ok {
		panic(fmt.Errorf("field «%v.%s»: %w", d.name, f.name, ErrNameUniqueViolation))
	}
	d.ownFields = append(d.ownFields, f)
	d.ownNames[f.name] = f
}

// NullDecl is returned when the requested declaration is not found
var NullDecl = new(nullDecl)

type nullDecl struct{}

func (d *nullDecl) Model() IModel            { return nil }
func (d *nullDecl) QName() QName             { return NullQName }
func (d *nullDecl) Kind() DeclKind           { return DeclKind_null }
func (d *nullDecl) Abstract() bool           { return false }
func (d *nullDecl) Ancestor() IDecl          { return nil }
func (d *nullDecl) IdentifyingField() string { return "" }
func (d *nullDecl) Field(string) IField      { return nil }
func (d *nullDecl) FieldCount() int          { return 0 }
func (d *nullDecl) Fields(func(IField))      {}
func (d *nullDecl) OwnFields(func(IField))   {}
func (d *nullDecl) EnumValues() []string     { return nil }
func (d *nullDecl) Decorators() []Decorator  { return nil }
