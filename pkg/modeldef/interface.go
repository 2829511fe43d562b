/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package modeldef

// Qualified name
//
// <namespace>.<entity>
//
// Ref to qname.go for constants and methods
type QName struct {
	ns     string
	entity string
}

// Declaration kind enumeration.
//
// Ref. kinds.go for constants and methods
type DeclKind uint8

// Scalar data kind enumeration.
//
// Ref. kinds.go for constants and methods
type DataKind uint8

// Field value kind enumeration: scalar, enum reference or relationship reference.
//
// Ref. kinds.go for constants and methods
type ValueKind uint8

// Model is an immutable, validated registry of declarations.
//
// Ref to model.go for implementation
type IModel interface {
	// Returns unique identity of this snapshot. Assigned on successful Build.
	ID() string

	// Returns declaration by name.
	//
	// If not found empty declaration with DeclKind_null is returned
	Decl(name QName) IDecl

	// Returns declaration by name.
	//
	// Returns nil if not found.
	DeclByName(name QName) IDecl

	// Return count of declarations.
	DeclCount() int

	// Enumerates all declarations in add order.
	Decls(func(IDecl))

	// Returns sole declaration with specified entity name, ignoring namespace.
	//
	// Returns nil if not found or if the entity name is declared in more
	// than one namespace.
	DeclByEntity(entity string) IDecl
}

// Model builder
//
// Ref to model.go for implementation
type IModelBuilder interface {
	// Adds new declaration with specified name and kind.
	//
	// # Panics:
	//   - if name is empty (modeldef.NullQName),
	//   - if name is invalid,
	//   - if declaration with name already exists.
	AddDecl(name QName, kind DeclKind) IDeclBuilder

	// Must be called after all declarations added.
	//
	// Validates and returns the built model or error. Validation is
	// all-or-nothing: any error discards the whole batch.
	Build() (IModel, error)
}

// Declaration describes a named schema entity: asset, participant,
// transaction, event, concept or enumeration.
//
// Ref to decl.go for implementation
type IDecl interface {
	// Parent model
	Model() IModel

	// Declaration qualified name.
	QName() QName

	// Declaration kind.
	Kind() DeclKind

	// Is declaration abstract.
	Abstract() bool

	// Returns supertype declaration.
	//
	// Returns nil if declaration extends nothing.
	Ancestor() IDecl

	// Returns name of the identifying field, own or inherited.
	//
	// Returns empty string if the declaration has no identity.
	IdentifyingField() string

	// Finds field by name in the flattened field view.
	//
	// Returns nil if not found.
	Field(name string) IField

	// Returns flattened fields count
	FieldCount() int

	// Enumerates all fields of the flattened view: ancestor fields first,
	// in declaration order, own fields after. A field shadowed by this
	// declaration is enumerated once, at the ancestor's position.
	Fields(func(IField))

	// Enumerates own (declared, not inherited) fields in declaration order.
	OwnFields(func(IField))

	// Returns enumeration values in declaration order.
	//
	// Empty for all kinds except DeclKind_Enum.
	EnumValues() []string

	// Returns opaque metadata annotations in declaration order.
	Decorators() []Decorator
}

// Field describes a single declared field.
//
// Ref to field.go for implementation
type IField interface {
	// Field name.
	Name() string

	// Field value kind: scalar, enum reference or relationship reference.
	ValueKind() ValueKind

	// Scalar data kind. DataKind_null unless ValueKind is ValueKind_Scalar.
	DataKind() DataKind

	// Target declaration name for enum and relationship fields.
	//
	// NullQName for scalar fields.
	Target() QName

	// Is field an array.
	IsArray() bool

	// Is field optional.
	IsOptional() bool
}

// Declaration builder
//
// Ref to decl.go for implementation
type IDeclBuilder interface {
	// Marks declaration as abstract.
	SetAbstract() IDeclBuilder

	// Sets supertype. Resolved and checked on Build.
	SetAncestor(name QName) IDeclBuilder

	// Sets name of own identifying field.
	SetIdentifiedBy(field string) IDeclBuilder

	// Adds scalar field.
	AddScalarField(name string, kind DataKind, isArray, isOptional bool) IDeclBuilder

	// Adds enum-valued field. Target resolved and checked on Build.
	AddEnumField(name string, target QName, isArray, isOptional bool) IDeclBuilder

	// Adds relationship field. Target resolved and checked on Build.
	AddRefField(name string, target QName, isArray, isOptional bool) IDeclBuilder

	// Adds enumeration value.
	AddEnumValue(value string) IDeclBuilder

	// Attaches an opaque metadata annotation. Never interpreted.
	AddDecorator(key, value string) IDeclBuilder
}

// Opaque metadata annotation attached to a declaration.
type Decorator struct {
	Key   string
	Value string
}
