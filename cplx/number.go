// SPDX-License-Identifier: MIT

// Package cplx implements a complex number value type with polar operations
// (integer powers and n-th roots), a textual form, and a numeric provider.
//
// Number is a plain (Re, Im) pair of float64 components and follows IEEE-754:
// there is no reduction invariant, equality is exact componentwise comparison,
// and ordering (Compare) is by modulus, which is useful for sorting and pivot
// selection but is not a field ordering.
//
// Importing the package registers the provider with numeric.Default().
package cplx

import (
	"cmp"
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultEpsilon is the modulus below which elimination treats a value as zero.
const DefaultEpsilon = 1e-10

// Number is Re + Im·i.
type Number struct {
	Re, Im float64
}

// I is the imaginary unit.
var I = Number{Im: 1}

func cplxErrorf(op string, err error) error {
	return fmt.Errorf("cplx.%s: %w", op, err)
}

// New returns re + im·i.
func New(re, im float64) Number { return Number{Re: re, Im: im} }

// Real returns re + 0i.
func Real(re float64) Number { return Number{Re: re} }

// FromComplex128 converts a built-in complex value.
func FromComplex128(c complex128) Number { return Number{Re: real(c), Im: imag(c)} }

// Complex128 converts to the built-in complex type.
func (z Number) Complex128() complex128 { return complex(z.Re, z.Im) }

func (z Number) Add(w Number) Number { return Number{z.Re + w.Re, z.Im + w.Im} }
func (z Number) Sub(w Number) Number { return Number{z.Re - w.Re, z.Im - w.Im} }
func (z Number) Neg() Number         { return Number{-z.Re, -z.Im} }
func (z Number) Conj() Number        { return Number{z.Re, -z.Im} }

// Mul returns (a+bi)(c+di) = (ac−bd) + (ad+bc)i.
func (z Number) Mul(w Number) Number {
	return Number{z.Re*w.Re - z.Im*w.Im, z.Re*w.Im + z.Im*w.Re}
}

// Div returns z / w using complex128 division. Division by zero follows
// IEEE-754: components become ±Inf or NaN.
func (z Number) Div(w Number) Number {
	return FromComplex128(z.Complex128() / w.Complex128())
}

// Scale returns z·k for a real k.
func (z Number) Scale(k float64) Number { return Number{z.Re * k, z.Im * k} }

// Abs returns the modulus |z|.
func (z Number) Abs() float64 { return math.Hypot(z.Re, z.Im) }

// Arg returns the argument in (−π, π].
func (z Number) Arg() float64 { return math.Atan2(z.Im, z.Re) }

// IsZero reports whether both components are zero.
func (z Number) IsZero() bool { return z.Re == 0 && z.Im == 0 }

// IsNaN reports whether either component is NaN and neither is infinite.
func (z Number) IsNaN() bool { return cmplx.IsNaN(z.Complex128()) }

// IsInf reports whether either component is infinite.
func (z Number) IsInf() bool { return cmplx.IsInf(z.Complex128()) }

// Equal reports exact componentwise equality.
func (z Number) Equal(w Number) bool { return z.Re == w.Re && z.Im == w.Im }

// Compare orders by modulus, breaking ties by Re and then Im.
func (z Number) Compare(w Number) int {
	if c := cmp.Compare(z.Abs(), w.Abs()); c != 0 {
		return c
	}
	if c := cmp.Compare(z.Re, w.Re); c != 0 {
		return c
	}
	return cmp.Compare(z.Im, w.Im)
}
