// SPDX-License-Identifier: MIT
// Package matrix: row-set constraint and the Matrix type.
package matrix

import "github.com/katalvlaran/fixedmath/vector"

// Rows is the set of row arrays holding 1..vector.MaxDim rows of vector.Vector[T, C].
type Rows[T vector.Number, C vector.Array[T]] interface {
	~[1]vector.Vector[T, C] | ~[2]vector.Vector[T, C] | ~[3]vector.Vector[T, C] |
		~[4]vector.Vector[T, C] | ~[5]vector.Vector[T, C] | ~[6]vector.Vector[T, C] |
		~[7]vector.Vector[T, C] | ~[8]vector.Vector[T, C] | ~[9]vector.Vector[T, C] |
		~[10]vector.Vector[T, C] | ~[11]vector.Vector[T, C] | ~[12]vector.Vector[T, C] |
		~[13]vector.Vector[T, C] | ~[14]vector.Vector[T, C] | ~[15]vector.Vector[T, C] |
		~[16]vector.Vector[T, C]
}

// Matrix is a len(R)×len(C) matrix of T in row-major order.
// The zero value is the zero matrix. Matrices are values: assignment copies every row.
type Matrix[T vector.Number, C vector.Array[T], R Rows[T, C]] struct {
	rows R
}
