/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package modeldef

// # Implements:
//   - IField
type field struct {
	name       string
	valueKind  ValueKind
	dataKind   DataKind
	target     QName
	isArray    bool
	isOptional bool
}

func newScalarField(name string, kind DataKind, isArray, isOptional bool) *field {
	return &field{
		name:       name,
		valueKind:  ValueKind_Scalar,
		dataKind:   kind,
		isArray:    isArray,
		isOptional: isOptional,
	}
}

func newEnumField(name string, target QName, isArray, isOptional bool) *field {
	return &field{
		name:       name,
		valueKind:  ValueKind_Enum,
		target:     target,
		isArray:    isArray,
		isOptional: isOptional,
	}
}

func newRefField(name string, target QName, isArray, isOptional bool) *field {
	return &field{
		name:       name,
		valueKind:  ValueKind_Relationship,
		target:     target,
		isArray:    isArray,
		isOptional: isOptional,
	}
}

func (fld *field) Name() string { return fld.name }

func (fld *field) ValueKind() ValueKind { return fld.valueKind }

func (fld *field) DataKind() DataKind { return fld.dataKind }

func (fld *field) Target() QName { return fld.target }

func (fld *field) IsArray() bool { return fld.isArray }

func (fld *field) IsOptional() bool { return fld.isOptional }

// Returns do two field specifications declare the same shape. Used to
// check shadowing: a subtype may redeclare an ancestor field only with
// an equal shape.
func sameShape(a, b *field) bool {
	return a.valueKind == b.valueKind &&
		a.dataKind == b.dataKind &&
		a.target == b.target &&
		a.isArray == b.isArray
}
