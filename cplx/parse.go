// SPDX-License-Identifier: MIT

package cplx

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/numeric"
)

// String formats z as "a", "bi", "a+bi" or "a-bi" using the shortest
// representation of each component. Non-finite components print as
// "+Inf", "-Inf" and "NaN", which Parse accepts.
func (z Number) String() string {
	re := strconv.FormatFloat(z.Re, 'g', -1, 64)
	if z.Im == 0 {
		return re
	}
	im := strconv.FormatFloat(z.Im, 'g', -1, 64) + "i"
	if z.Re == 0 {
		return im
	}
	if im[0] != '+' && im[0] != '-' {
		im = "+" + im
	}
	return re + im
}

// MarshalText implements encoding.TextMarshaler.
func (z Number) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Number) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// term is one parsed "[sign][coef][i]" unit.
type term struct {
	value float64
	imag  bool
}

// Parse reads a complex literal.
//
// Grammar (spaces are allowed around the joining sign):
//
//	number := term [ sign term ]
//	term   := [sign] [coef] ["i"]       (coef or "i" must be present)
//	coef   := decimal float, optional exponent | "Inf" | "NaN"
//
// A bare "i" has coefficient 1. Two real terms or two imaginary terms, an
// empty string and trailing characters return numeric.ErrFormat.
func Parse(s string) (Number, error) {
	p := parser{src: strings.TrimSpace(s)}
	first, ok := p.term(false)
	if !ok {
		return Number{}, cplxErrorf("Parse", numeric.ErrFormat)
	}
	p.skipSpace()
	if p.done() {
		return first.number(), nil
	}

	second, ok := p.term(true)
	if !ok || !p.done() || first.imag == second.imag {
		return Number{}, cplxErrorf("Parse", numeric.ErrFormat)
	}
	return first.number().Add(second.number()), nil
}

// MustParse is Parse that panics on malformed input.
func MustParse(s string) Number {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

func (t term) number() Number {
	if t.imag {
		return Number{Im: t.value}
	}
	return Number{Re: t.value}
}

type parser struct {
	src string
	pos int
}

func (p *parser) done() bool { return p.pos == len(p.src) }

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.done() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

// term parses one unit; needSign requires a leading '+' or '-'.
func (p *parser) term(needSign bool) (term, bool) {
	sign := 1.0
	switch p.peek() {
	case '+':
		p.pos++
	case '-':
		sign = -1
		p.pos++
	default:
		if needSign {
			return term{}, false
		}
	}
	if needSign {
		p.skipSpace()
	}

	value, hasCoef := 1.0, false
	if lit := p.coefficient(); lit != "" {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return term{}, false
		}
		value, hasCoef = v, true
	}
	isImag := p.peek() == 'i'
	if isImag {
		p.pos++
	}
	if !hasCoef && !isImag {
		return term{}, false
	}
	return term{value: sign * value, imag: isImag}, true
}

// coefficient consumes digits, one '.', and an optional exponent, or one of
// the non-finite words String emits.
func (p *parser) coefficient() string {
	start := p.pos
	for _, word := range [...]string{"Inf", "NaN"} {
		if strings.HasPrefix(p.src[p.pos:], word) {
			p.pos += len(word)
			return word
		}
	}
	digits, dot := 0, false
scan:
	for !p.done() {
		c := p.peek()
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			break scan
		}
		p.pos++
	}
	if digits == 0 {
		p.pos = start
		return ""
	}

	if c := p.peek(); c == 'e' || c == 'E' {
		mark := p.pos
		p.pos++
		if c := p.peek(); c == '+' || c == '-' {
			p.pos++
		}
		expDigits := 0
		for !p.done() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
			expDigits++
		}
		if expDigits == 0 {
			p.pos = mark
		}
	}
	return p.src[start:p.pos]
}
