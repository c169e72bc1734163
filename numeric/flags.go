// SPDX-License-Identifier: MIT

package numeric

import "strings"

// Flags describes the capabilities of a numeric representation.
type Flags uint8

const (
	// Bounded types have a finite MinValue/MaxValue.
	Bounded Flags = 1 << iota
	// Unsigned types cannot represent negative values.
	Unsigned
	// TwosComplement types use a two's complement bit layout.
	TwosComplement
	// Fractional types can represent non-integral values.
	Fractional
	// Floating types follow IEEE-754 semantics (NaN, ±Inf, no overflow errors).
	Floating
)

var flagNames = [...]string{"Bounded", "Unsigned", "TwosComplement", "Fractional", "Floating"}

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// IsIntegral reports whether the type represents only whole numbers.
func (f Flags) IsIntegral() bool { return f&Fractional == 0 }

// String lists the set flags joined by '|', or "None".
func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	parts := make([]string, 0, len(flagNames))
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "|")
}
