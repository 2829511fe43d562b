/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package modeldef

import (
	"strings"
)

//go:generate stringer -type=DeclKind -output=kinds_declkind_string.go
//go:generate stringer -type=DataKind -output=kinds_datakind_string.go
//go:generate stringer -type=ValueKind -output=kinds_valuekind_string.go

const (
	// null - no-value kind. Returned when the requested declaration does not exist
	DeclKind_null DeclKind = iota

	DeclKind_Asset
	DeclKind_Participant
	DeclKind_Transaction
	DeclKind_Event
	DeclKind_Concept
	DeclKind_Enum

	DeclKind_Count
)

const (
	DataKind_null DataKind = iota

	DataKind_String
	DataKind_Integer
	DataKind_Long
	DataKind_Double
	DataKind_Boolean
	DataKind_DateTime

	DataKind_Count
)

const (
	ValueKind_null ValueKind = iota

	ValueKind_Scalar
	ValueKind_Enum
	ValueKind_Relationship

	ValueKind_Count
)

// Returns can instances of this declaration kind exist at runtime
func (k DeclKind) Instantiable() bool {
	return (k == DeclKind_Asset) || (k == DeclKind_Participant) || (k == DeclKind_Transaction) || (k == DeclKind_Event)
}

// Returns must concrete declarations of this kind have an identifying field
func (k DeclKind) HasIdentity() bool {
	return (k == DeclKind_Asset) || (k == DeclKind_Participant)
}

// Returns may this declaration kind carry an `identified by` clause
func (k DeclKind) IdentityAllowed() bool {
	return k.Instantiable()
}

// Returns may declarations of this kind take part in inheritance
func (k DeclKind) Extendable() bool {
	return (k != DeclKind_null) && (k != DeclKind_Enum) && (k < DeclKind_Count)
}

// Renders a DeclKind in human-readable form, without "DeclKind_" prefix,
// suitable for debugging or error messages
func (k DeclKind) TrimString() string {
	const pref = "DeclKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Returns is data kind usable with ordering comparison operators
func (k DataKind) IsOrdered() bool {
	switch k {
	case DataKind_String, DataKind_Integer, DataKind_Long, DataKind_Double, DataKind_DateTime:
		return true
	}
	return false
}

// Returns is data kind numeric
func (k DataKind) IsNumeric() bool {
	switch k {
	case DataKind_Integer, DataKind_Long, DataKind_Double:
		return true
	}
	return false
}

// Renders a DataKind in human-readable form, without "DataKind_" prefix,
// suitable for debugging or error messages
func (k DataKind) TrimString() string {
	const pref = "DataKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Renders a ValueKind in human-readable form, without "ValueKind_" prefix,
// suitable for debugging or error messages
func (k ValueKind) TrimString() string {
	const pref = "ValueKind_"
	return strings.TrimPrefix(k.String(), pref)
}
