/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Michael Saigachenko
 */

package instances

import (
	"github.com/entiql/entiql/pkg/modeldef"
)

// Instance is a single typed entity supplied by an external collaborator
// (a persistence layer, a test fixture, ...).
//
// Runtime value mapping per field data kind:
//   - String, enum value: string
//   - Integer: int32
//   - Long: int64
//   - Double: float64
//   - Boolean: bool
//   - DateTime: time.Time
//   - relationship: Ref
//   - array fields: a slice of the above
//
// Value returns nil for an unset optional field.
type IInstance interface {
	QName() modeldef.QName
	Value(name string) interface{}
}

// Ref is a relationship field value: an identity reference to an instance
// owned elsewhere, never an embedded copy.
type Ref struct {
	Type modeldef.QName
	ID   string
}

// Source supplies a finite stream of candidate instances for one concrete
// declaration. Enumeration is lazy: instances are produced one by one and
// the callback error aborts it. The callback error is returned as is.
type ISource interface {
	Instances(callback func(IInstance) error) error
}

// RefResolver dereferences a relationship for the single field-path hop.
// Resolving is optional: a source that can not resolve returns nil and the
// comparison falls under the missing-data policy.
type IRefResolver interface {
	Resolve(ref Ref) IInstance
}

// Values carries runtime query parameters, keyed by placeholder name.
type Values map[string]interface{}
