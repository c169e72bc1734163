// SPDX-License-Identifier: MIT

// Package numeric: sentinel error set shared by every provider and by the
// packages built on top of it (rational, cplx, vector, matrix, ntheory).
//
// Providers return these sentinels (optionally wrapped with an operation tag
// through opErrorf); callers match them with errors.Is.

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned by the Registry when a type has neither a
	// registered factory nor a container provider.
	ErrUnsupportedType = errors.New("numeric: unsupported type")

	// ErrDivideByZero signals integral (or exact) division by the type's zero.
	ErrDivideByZero = errors.New("numeric: division by zero")

	// ErrOverflow signals that a checked operation on a bounded type produced a
	// result outside the representable range.
	ErrOverflow = errors.New("numeric: arithmetic overflow")

	// ErrConversion signals that a value cannot be represented in the target type.
	ErrConversion = errors.New("numeric: value not representable")

	// ErrNotSupported marks an operation the type does not provide
	// (e.g. Sin on an integer type).
	ErrNotSupported = errors.New("numeric: operation not supported for this type")

	// ErrFormat signals unparsable textual input.
	ErrFormat = errors.New("numeric: invalid format")

	// ErrArgumentRange signals an out-of-domain argument.
	ErrArgumentRange = errors.New("numeric: argument out of range")
)

// opErrorf wraps err with the provider type name and the operation tag.
func opErrorf(typ, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", typ, op, err)
}
