// SPDX-License-Identifier: MIT

package cplx

import (
	"math"

	"github.com/katalvlaran/lvnum/numeric"
)

const twoPi = 2 * math.Pi

// FromPolar returns r·(cos θ + i·sin θ).
func FromPolar(r, theta float64) Number {
	s, c := math.Sincos(theta)
	return Number{r * c, r * s}
}

// normalizeAngle maps θ into (−2π, 2π) keeping its sign. Exact multiples of
// 2π become ±0, the same point on the circle as 2π.
func normalizeAngle(theta float64) float64 { return math.Mod(theta, twoPi) }

// Pow returns z^n through the polar form: the modulus is raised to n and the
// argument multiplied by n, normalized into (−2π, 2π). Pow(0) is 1.
func (z Number) Pow(n int) Number {
	if n == 0 {
		return Number{Re: 1}
	}
	r := math.Pow(z.Abs(), float64(n))
	return FromPolar(r, normalizeAngle(z.Arg()*float64(n)))
}

// Roots returns the n n-th roots of z (n ≥ 2). The k-th root has modulus
// |z|^(1/n) and argument arg(z)/n + k·2π/n. n < 2 returns
// numeric.ErrArgumentRange.
func (z Number) Roots(n int) ([]Number, error) {
	if n < 2 {
		return nil, cplxErrorf("Roots", numeric.ErrArgumentRange)
	}
	r := math.Pow(z.Abs(), 1/float64(n))
	base := z.Arg() / float64(n)
	step := twoPi / float64(n)

	out := make([]Number, n)
	for k := range out {
		out[k] = FromPolar(r, base+float64(k)*step)
	}
	return out, nil
}
