/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package queries

const queryFileExt = ".eql"

const (
	dirAsc  = "ASC"
	dirDesc = "DESC"
)

const (
	OpAnd = "AND"
	OpOr  = "OR"
)

const (
	OpEq = "=="
	OpNe = "!="
	OpLt = "<"
	OpLe = "<="
	OpGt = ">"
	OpGe = ">="
)
