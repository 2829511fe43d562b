/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Maxim Geraskin
 * @author: Nikolay Nikitin
 */

package modeldef

import (
	"strings"
)

const (
	// Used as delimiter in qualified names
	QNameQualifierChar = "."

	// Maximum identifier length
	MaxIdentLen = 255
)

// Null (empty) QName
var NullQName = QName{}

// Builds a qualified name from two parts (from namespace and from entity name)
func NewQName(namespace, entityName string) QName {
	return QName{ns: namespace, entity: entityName}
}

// Compare two qualified names
func CompareQName(a, b QName) int {
	if a.ns != b.ns {
		return strings.Compare(a.ns, b.ns)
	}
	return strings.Compare(a.entity, b.entity)
}

// Parse a qualified name from string. The last dot-separated part is the
// entity name, everything before it is the namespace.
func ParseQName(val string) (res QName, err error) {
	i := strings.LastIndex(val, QNameQualifierChar)
	if i <= 0 || i == len(val)-1 {
		return NullQName, ErrInvalid("qualified name «%v»", val)
	}
	return NewQName(val[:i], val[i+1:]), nil
}

// Parse a qualified name from string.
//
// # Panics:
//   - if string is not a valid qualified name
func MustParseQName(val string) QName {
	q, err := ParseQName(val)
	if err != nil {
		panic(err)
	}
	return q
}

// Returns namespace
func (qn QName) Namespace() string { return qn.ns }

// Returns entity name
func (qn QName) Entity() string { return qn.entity }

// Returns QName as string
func (qn QName) String() string { return qn.ns + QNameQualifierChar + qn.entity }

// Returns has qName valid namespace and entity identifiers and error if not
func ValidQName(qName QName) (bool, error) {
	if qName == NullQName {
		return false, ErrMissed("name")
	}
	for _, part := range strings.Split(qName.Namespace(), QNameQualifierChar) {
		if ok, err := ValidIdent(part); !ok {
			return false, err
		}
	}
	return ValidIdent(qName.Entity())
}

// Returns is string a valid identifier and error if not
func ValidIdent(ident string) (bool, error) {
	if len(ident) < 1 {
		return false, ErrMissed("ident")
	}

	if l := len(ident); l > MaxIdentLen {
		return false, ErrOutOfBounds("ident «%s» too long (%d runes, max is %d)", ident, l, MaxIdentLen)
	}

	digit := func(r rune) bool { return ('0' <= r) && (r <= '9') }

	letter := func(r rune) bool { return (('a' <= r) && (r <= 'z')) || (('A' <= r) && (r <= 'Z')) }

	underScore := func(r rune) bool { return r == '_' }

	for p, c := range ident {
		if !letter(c) && !underScore(c) {
			if (p == 0) || !digit(c) {
				return false, ErrInvalid("ident «%s» has invalid char «%c» at pos %d", ident, c, p)
			}
		}
	}

	return true, nil
}
