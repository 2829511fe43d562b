/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

import (
	"github.com/entiql/entiql/pkg/modeldef"
)

func entityKind(keyword string) modeldef.DeclKind {
	switch keyword {
	case kindAsset:
		return modeldef.DeclKind_Asset
	case kindParticipant:
		return modeldef.DeclKind_Participant
	case kindTransaction:
		return modeldef.DeclKind_Transaction
	case kindEvent:
		return modeldef.DeclKind_Event
	case kindConcept:
		return modeldef.DeclKind_Concept
	}
	return modeldef.DeclKind_null
}

func scalarKind(name string) modeldef.DataKind {
	switch name {
	case typeString:
		return modeldef.DataKind_String
	case typeInteger:
		return modeldef.DataKind_Integer
	case typeLong:
		return modeldef.DataKind_Long
	case typeDouble:
		return modeldef.DataKind_Double
	case typeBoolean:
		return modeldef.DataKind_Boolean
	case typeDateTime:
		return modeldef.DataKind_DateTime
	}
	return modeldef.DataKind_null
}

func isScalarType(q QualifiedName) bool {
	return len(q.Parts) == 1 && scalarKind(string(q.Parts[0])) != modeldef.DataKind_null
}

// qualifyRef resolves a type reference written in a schema: an unqualified
// name resolves within the declaring namespace, a dotted name is taken as
// an exact fully-qualified reference.
func qualifyRef(s *SchemaAST, q QualifiedName) modeldef.QName {
	if len(q.Parts) == 1 {
		return s.NewQName(q.Parts[0])
	}
	return modeldef.NewQName(
		QualifiedName{Parts: q.Parts[:len(q.Parts)-1]}.String(),
		string(q.Parts[len(q.Parts)-1]),
	)
}
