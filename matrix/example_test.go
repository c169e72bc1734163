// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rational"
)

// ExampleMul multiplies a 2×4 matrix by a 4×3 matrix.
func ExampleMul() {
	a := matrix.MustFromRows([][]int{{0, 1, -2, 3}, {1, -1, 2, 1}})
	b := matrix.MustFromRows([][]int{{1, -1, 0}, {1, 1, 2}, {2, 1, -1}, {0, 1, 3}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [-3, 2, 13]
	// [4, 1, -1]
}

// ExampleDense_Inverse inverts a matrix exactly and detects a singular one.
func ExampleDense_Inverse() {
	r := rational.New
	m := matrix.MustFromRows([][]rational.Rational{{r(2, 1), r(1, 1)}, {r(1, 1), r(1, 1)}})
	inv, ok, _ := m.Inverse()
	fmt.Println(ok)
	fmt.Print(inv)

	s := matrix.MustFromRows([][]float64{{2, 1, -1}, {0, 1, -2}, {2, -1, 3}})
	_, ok, err := s.Inverse()
	fmt.Println(ok, err)
	// Output:
	// true
	// [1, -1]
	// [-1, 2]
	// false <nil>
}

// ExampleDense_Format pads each element to a fixed width.
func ExampleDense_Format() {
	m := matrix.MustFromRows([][]float64{{1, 0.5}, {-3, 10}})
	s, _ := m.Format("W6%.1f")
	fmt.Print(s)
	// Output:
	// [   1.0,    0.5]
	// [  -3.0,   10.0]
}
