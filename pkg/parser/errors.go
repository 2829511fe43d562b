/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrDirContainsNoSchemaFiles = errors.New("directory contains no schema files")

func ErrRedeclared(name string) error {
	return fmt.Errorf("redeclared %s", name)
}

func ErrIdentityClauseNotAllowed(kind, name string) error {
	return fmt.Errorf("%s %s can not be identified", kind, name)
}

func ErrScalarRelationshipTarget(name string) error {
	return fmt.Errorf("relationship to scalar type %s", name)
}

func errorAt(err error, pos *lexer.Position) error {
	return fmt.Errorf("%s: %w", pos.String(), err)
}
