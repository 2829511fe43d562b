/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package modeldef

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

var ErrNameUniqueViolation = errors.New("name already used")

var ErrUnresolvedError = errors.New("unresolved reference")

func ErrUnresolvedSuperType(decl, super QName) error {
	return EnrichError(ErrUnresolvedError, "declaration «%v» extends unknown «%v»", decl, super)
}

func ErrUnresolvedRelationshipTarget(decl QName, field string, target QName) error {
	return EnrichError(ErrUnresolvedError, "relationship field «%v.%s» targets unknown «%v»", decl, field, target)
}

func ErrUnresolvedEnumTarget(decl QName, field string, target QName) error {
	return EnrichError(ErrUnresolvedError, "enum field «%v.%s» targets unknown «%v»", decl, field, target)
}

var ErrCyclicInheritanceError = errors.New("cyclic inheritance")

func ErrCyclicInheritance(decl QName) error {
	return EnrichError(ErrCyclicInheritanceError, "declaration «%v»", decl)
}

var ErrIncompatibleError = errors.New("incompatible")

func ErrIncompatibleExtends(decl QName, kind DeclKind, super QName, superKind DeclKind) error {
	return EnrichError(ErrIncompatibleError, "%s «%v» can not extend %s «%v»", kind.TrimString(), decl, superKind.TrimString(), super)
}

func ErrInvalidRelationshipTarget(decl QName, field string, target QName, kind DeclKind) error {
	return EnrichError(ErrIncompatibleError, "relationship field «%v.%s» targets %s «%v», expected asset, participant, transaction or event", decl, field, kind.TrimString(), target)
}

func ErrInvalidEnumTarget(decl QName, field string, target QName, kind DeclKind) error {
	return EnrichError(ErrIncompatibleError, "enum field «%v.%s» targets %s «%v», expected enum", decl, field, kind.TrimString(), target)
}

var ErrFieldShadowError = errors.New("field shadow mismatch")

func ErrFieldShadowTypeMismatch(decl QName, field string, super QName) error {
	return EnrichError(ErrFieldShadowError, "declaration «%v» redeclares field «%s» of «%v» with different value kind", decl, field, super)
}

var ErrIdentityError = errors.New("identity")

func ErrMissingIdentifyingField(decl QName) error {
	return EnrichError(ErrIdentityError, "concrete declaration «%v» has no identifying field", decl)
}

func ErrDuplicateIdentifyingField(decl QName, own, inherited string) error {
	return EnrichError(ErrIdentityError, "declaration «%v» declares identifying field «%s» but already inherits «%s»", decl, own, inherited)
}

func ErrIdentityNotAllowed(decl QName, kind DeclKind) error {
	return EnrichError(ErrIdentityError, "%s «%v» can not have an identifying field", kind.TrimString(), decl)
}

func ErrInvalidIdentifyingField(decl QName, field string) error {
	return EnrichError(ErrIdentityError, "identifying field «%v.%s» must be a declared non-array, non-optional String field", decl, field)
}
