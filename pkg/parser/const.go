/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

const schemaFileExt = ".edl"

const (
	kindAsset       = "asset"
	kindParticipant = "participant"
	kindTransaction = "transaction"
	kindEvent       = "event"
	kindConcept     = "concept"
)

const (
	typeString   = "String"
	typeInteger  = "Integer"
	typeLong     = "Long"
	typeDouble   = "Double"
	typeBoolean  = "Boolean"
	typeDateTime = "DateTime"
)
