// SPDX-License-Identifier: MIT
// Package matrix: element-wise and scalar arithmetic.
//
// Element-wise operations take an operand of the receiver's own type, so both
// matrices always share a shape. Row i of the result is the corresponding
// vector operation on row i of the operands.
//
// Complexity: O(R·C) for every operation.
package matrix

import "github.com/katalvlaran/fixedmath/internal/contract"

const (
	opDivScalar       = "Matrix.DivScalar"
	opDivScalarAssign = "Matrix.DivScalarAssign"
)

// Add returns m + o.
func (m Matrix[T, C, R]) Add(o Matrix[T, C, R]) Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].AddAssign(o.rows[i])
	}

	return m
}

// Sub returns m - o.
func (m Matrix[T, C, R]) Sub(o Matrix[T, C, R]) Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].SubAssign(o.rows[i])
	}

	return m
}

// Hadamard returns the element-wise product m ∘ o.
func (m Matrix[T, C, R]) Hadamard(o Matrix[T, C, R]) Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].MulAssign(o.rows[i])
	}

	return m
}

// AddAssign sets m = m + o and returns m.
func (m *Matrix[T, C, R]) AddAssign(o Matrix[T, C, R]) *Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].AddAssign(o.rows[i])
	}

	return m
}

// SubAssign sets m = m - o and returns m.
func (m *Matrix[T, C, R]) SubAssign(o Matrix[T, C, R]) *Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].SubAssign(o.rows[i])
	}

	return m
}

// HadamardAssign sets m = m ∘ o and returns m.
func (m *Matrix[T, C, R]) HadamardAssign(o Matrix[T, C, R]) *Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].MulAssign(o.rows[i])
	}

	return m
}

// ---------- scalar broadcast ----------

// AddScalar returns m with k added to every element.
func (m Matrix[T, C, R]) AddScalar(k T) Matrix[T, C, R] {
	m.AddScalarAssign(k)
	return m
}

// SubScalar returns m with k subtracted from every element.
func (m Matrix[T, C, R]) SubScalar(k T) Matrix[T, C, R] {
	m.SubScalarAssign(k)
	return m
}

// MulScalar returns m with every element multiplied by k.
func (m Matrix[T, C, R]) MulScalar(k T) Matrix[T, C, R] {
	m.MulScalarAssign(k)
	return m
}

// DivScalar returns m with every element divided by k. k must be non-zero.
func (m Matrix[T, C, R]) DivScalar(k T) Matrix[T, C, R] {
	contract.NonZero(opDivScalar, k)
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].DivScalarAssign(k)
	}

	return m
}

// AddScalarAssign adds k to every element of m and returns m.
func (m *Matrix[T, C, R]) AddScalarAssign(k T) *Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].AddScalarAssign(k)
	}

	return m
}

// SubScalarAssign subtracts k from every element of m and returns m.
func (m *Matrix[T, C, R]) SubScalarAssign(k T) *Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].SubScalarAssign(k)
	}

	return m
}

// MulScalarAssign multiplies every element of m by k and returns m.
func (m *Matrix[T, C, R]) MulScalarAssign(k T) *Matrix[T, C, R] {
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].MulScalarAssign(k)
	}

	return m
}

// DivScalarAssign divides every element of m by k and returns m.
// k is checked before any element changes.
func (m *Matrix[T, C, R]) DivScalarAssign(k T) *Matrix[T, C, R] {
	contract.NonZero(opDivScalarAssign, k)
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].DivScalarAssign(k)
	}

	return m
}

// Equal reports whether m and o hold the same elements. Matrices of different
// shapes are different types and cannot be compared.
func (m Matrix[T, C, R]) Equal(o Matrix[T, C, R]) bool {
	for i := 0; i < len(m.rows); i++ {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}
