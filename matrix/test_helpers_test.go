// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - int64 shapes used across the tests, independent of the generated aliases.
//   - Fixture matrices for the contraction tests.

package matrix_test

import (
	"github.com/katalvlaran/fixedmath/matrix"
	"github.com/katalvlaran/fixedmath/vector"
)

type (
	row1 = vector.Vector[int64, [1]int64]
	row2 = vector.Vector[int64, [2]int64]
	row3 = vector.Vector[int64, [3]int64]
	row4 = vector.Vector[int64, [4]int64]

	mat2x1 = matrix.Matrix[int64, [1]int64, [2]row1]
	mat2x2 = matrix.Matrix[int64, [2]int64, [2]row2]
	mat2x3 = matrix.Matrix[int64, [3]int64, [2]row3]
	mat2x4 = matrix.Matrix[int64, [4]int64, [2]row4]
	mat3x2 = matrix.Matrix[int64, [2]int64, [3]row2]
	mat3x3 = matrix.Matrix[int64, [3]int64, [3]row3]
	mat3x4 = matrix.Matrix[int64, [4]int64, [3]row4]
)

// fixtureA returns [[1,2,3],[4,5,6]].
func fixtureA() mat2x3 {
	return mat2x3{}.WithRows([3]int64{1, 2, 3}, [3]int64{4, 5, 6})
}

// fixtureB returns [[1,2,3,4],[5,6,7,8],[9,10,11,12]].
func fixtureB() mat3x4 {
	return mat3x4{}.WithRows(
		[4]int64{1, 2, 3, 4},
		[4]int64{5, 6, 7, 8},
		[4]int64{9, 10, 11, 12},
	)
}
