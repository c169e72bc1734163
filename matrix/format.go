// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/numeric"
)

const opFormat = "Format"

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtWidth    = 'W'
)

// Format renders M row by row, e.g. "[1, 2]\n[3, 4]\n".
//
// spec is an optional width token "W<digits>" followed by a fmt verb applied
// to every element: "W8%.3f" right-aligns each element in 8 columns with
// three decimals, "%g" only changes the verb, "W6" only pads (using the
// matrix's element format), and "" is String().
//
// Errors:
//   - numeric.ErrFormat when the width token has no digits or the verb part
//     contains no '%'.
func (m *Dense[T]) Format(spec string) (string, error) {
	width, verb, err := m.parseFormat(spec)
	if err != nil {
		return "", matrixErrorf(opFormat, err)
	}

	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			cell := fmt.Sprintf(verb, m.data[base+j])
			if pad := width - len([]rune(cell)); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String(), nil
}

// String formats M with its element format (DefaultElementFormat unless
// WithElementFormat was given).
func (m *Dense[T]) String() string {
	s, err := m.Format("")
	if err != nil {
		return err.Error()
	}

	return s
}

// parseFormat splits spec into a column width and an element verb.
func (m *Dense[T]) parseFormat(spec string) (int, string, error) {
	width := DefaultWidth
	if spec != "" && spec[0] == _fmtWidth {
		end := 1
		for end < len(spec) && spec[end] >= '0' && spec[end] <= '9' {
			end++
		}
		if end == 1 {
			return 0, "", fmt.Errorf("%q: width token needs digits: %w", spec, numeric.ErrFormat)
		}
		w, err := strconv.Atoi(spec[1:end])
		if err != nil {
			return 0, "", fmt.Errorf("%q: %w", spec, numeric.ErrFormat)
		}
		width, spec = w, spec[end:]
	}
	if spec == "" {
		return width, m.format, nil
	}
	if !strings.Contains(spec, "%") {
		return 0, "", fmt.Errorf("%q: element format needs a %% verb: %w", spec, numeric.ErrFormat)
	}

	return width, spec, nil
}
