// SPDX-License-Identifier: MIT
// Package matrix: construction and element/row access.
//
// Purpose:
//   - Build matrices from row arrays or row vectors.
//   - Expose (row, col) access with bounds checks on both axes, and whole-row access
//     by copy (Row) or by reference (RowRef).
//
// Complexity:
//   - At/Set/RowRef: O(1); Row/SetRow: O(C); FromRows/FromVectors/WithRows: O(R·C).
package matrix

import (
	"github.com/katalvlaran/fixedmath/internal/contract"
	"github.com/katalvlaran/fixedmath/vector"
)

// Operation tags for contract panics.
const (
	opAt          = "Matrix.At"
	opSet         = "Matrix.Set"
	opRow         = "Matrix.Row"
	opRowRef      = "Matrix.RowRef"
	opSetRow      = "Matrix.SetRow"
	opWithRows    = "Matrix.WithRows"
	opFromRows    = "matrix.FromRows"
	opFromVectors = "matrix.FromVectors"
)

// FromRows builds a matrix from row-major row arrays. The number of rows must be
// len(R); a row literal longer than C does not compile.
//
//	m := matrix.FromRows[int64, [2]vector.Vector[int64, [3]int64]](
//		[3]int64{1, 2, 3},
//		[3]int64{4, 5, 6},
//	)
func FromRows[T vector.Number, R Rows[T, C], C vector.Array[T]](rows ...C) Matrix[T, C, R] {
	var m Matrix[T, C, R]
	contract.SameLen(opFromRows, len(rows), len(m.rows))
	for i := 0; i < len(m.rows); i++ {
		m.rows[i] = vector.Of[T](rows[i])
	}

	return m
}

// FromVectors builds a matrix whose row i is rows[i]. The number of rows must be len(R).
func FromVectors[R Rows[T, C], T vector.Number, C vector.Array[T]](rows ...vector.Vector[T, C]) Matrix[T, C, R] {
	var m Matrix[T, C, R]
	contract.SameLen(opFromVectors, len(rows), len(m.rows))
	for i := 0; i < len(m.rows); i++ {
		m.rows[i] = rows[i]
	}

	return m
}

// WithRows returns a copy of m with every row replaced from rows. It lets a named
// matrix type drive inference:
//
//	a := Mat2x3I64{}.WithRows([3]int64{1, 2, 3}, [3]int64{4, 5, 6})
func (m Matrix[T, C, R]) WithRows(rows ...C) Matrix[T, C, R] {
	contract.SameLen(opWithRows, len(rows), len(m.rows))
	for i := 0; i < len(m.rows); i++ {
		m.rows[i] = vector.Of[T](rows[i])
	}

	return m
}

// Rows returns the number of rows, len(R).
func (m Matrix[T, C, R]) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns, len(C).
func (m Matrix[T, C, R]) Cols() int {
	return m.rows[0].Len()
}

// At returns element (r, c).
func (m Matrix[T, C, R]) At(r, c int) T {
	contract.Index2(opAt, r, c, len(m.rows), m.Cols())
	return m.rows[r].At(c)
}

// Set assigns element (r, c).
func (m *Matrix[T, C, R]) Set(r, c int, x T) {
	contract.Index2(opSet, r, c, len(m.rows), m.Cols())
	m.rows[r].Set(c, x)
}

// Row returns a copy of row r.
func (m Matrix[T, C, R]) Row(r int) vector.Vector[T, C] {
	contract.Index(opRow, r, len(m.rows))
	return m.rows[r]
}

// RowRef returns a pointer to row r for in-place read/write. The pointer aliases
// m's storage.
func (m *Matrix[T, C, R]) RowRef(r int) *vector.Vector[T, C] {
	contract.Index(opRowRef, r, len(m.rows))
	return &m.rows[r]
}

// SetRow replaces row r with v.
func (m *Matrix[T, C, R]) SetRow(r int, v vector.Vector[T, C]) {
	contract.Index(opSetRow, r, len(m.rows))
	m.rows[r] = v
}

// RowArray returns a copy of the row storage.
func (m Matrix[T, C, R]) RowArray() R {
	return m.rows
}
