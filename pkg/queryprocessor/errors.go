/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package queryprocessor

import (
	"errors"
	"fmt"
)

var ErrUnknownType = errors.New("unknown type")
var ErrAmbiguousType = errors.New("ambiguous type")
var ErrNotSelectable = errors.New("not selectable")
var ErrAbstractQueryTarget = errors.New("abstract query target")
var ErrUnknownField = errors.New("unknown field")
var ErrIncompatibleComparison = errors.New("incompatible comparison")
var ErrWrongType = errors.New("wrong type")
var ErrMissingParameter = errors.New("missing parameter")

func errUnknownType(name string) error {
	return fmt.Errorf("%w «%s»", ErrUnknownType, name)
}

func errAmbiguousType(name string, count int) error {
	return fmt.Errorf("%w «%s»: declared in %d namespaces", ErrAmbiguousType, name, count)
}

func errNotSelectable(name string) error {
	return fmt.Errorf("%w: «%s» declares no instances", ErrNotSelectable, name)
}

func errAbstractQueryTarget(name string) error {
	return fmt.Errorf("%w «%s»", ErrAbstractQueryTarget, name)
}

func errUnknownField(target, path string) error {
	return fmt.Errorf("%w «%s» in «%s»", ErrUnknownField, path, target)
}

func errIncompatibleComparison(op, path, reason string) error {
	return fmt.Errorf("'%s' on field «%s»: %s: %w", op, path, reason, ErrIncompatibleComparison)
}

func errWrongType(path string, value interface{}) error {
	return fmt.Errorf("field «%s»: value %v: %w", path, value, ErrWrongType)
}

func errMissingParameter(name string) error {
	return fmt.Errorf("%w «%s»", ErrMissingParameter, name)
}
