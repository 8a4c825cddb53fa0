// SPDX-License-Identifier: MIT
// Package matrix: contraction, matrix × vector, transpose and identity.
//
// Shape rules:
//   - Mul contracts a (Rows×K) with b (K×Cols). b's column type C and the element
//     type are tied by the signature; the inner length K and the result row count
//     cannot be related by Go generics, so both are asserted once per call
//     (ErrDimensionMismatch).
//   - MulVec takes a vector of the matrix's own column type, so its inner dimension
//     is static. The result is a Rows×1 column matrix.
//   - Results are computed into a local and copied out, so dst may alias an operand.
//
// Determinism:
//   - Element (i, j) is accumulated from T's zero in increasing k order.
//
// Complexity:
//   - Mul: O(Rows·K·Cols). MulVec: O(Rows·Cols). TransposeInto: O(Rows·Cols).
package matrix

import (
	"github.com/katalvlaran/fixedmath/internal/contract"
	"github.com/katalvlaran/fixedmath/vector"
)

const (
	opMul         = "matrix.Mul"
	opMulVec      = "matrix.MulVec"
	opTranspose   = "matrix.TransposeInto"
	opSetIdentity = "Matrix.SetIdentity"
)

// Mul returns the matrix product a × b. RC names the result's row array and must
// hold a.Rows() rows; a.Cols() must equal b.Rows().
//
//	c := matrix.Mul[[2]vector.Vector[int64, [4]int64]](a, b) // 2×3 × 3×4
func Mul[RC Rows[T, C], T vector.Number, K vector.Array[T], RA Rows[T, K], C vector.Array[T], RB Rows[T, C]](
	a Matrix[T, K, RA], b Matrix[T, C, RB],
) Matrix[T, C, RC] {
	var out Matrix[T, C, RC]
	MulInto(&out, a, b)

	return out
}

// MulInto stores a × b in dst and returns dst. dst must have a.Rows() rows and
// a.Cols() must equal b.Rows().
func MulInto[T vector.Number, K vector.Array[T], RA Rows[T, K], C vector.Array[T], RB Rows[T, C], RC Rows[T, C]](
	dst *Matrix[T, C, RC], a Matrix[T, K, RA], b Matrix[T, C, RB],
) *Matrix[T, C, RC] {
	contract.SameLen(opMul, a.Cols(), len(b.rows))
	contract.SameLen(opMul, len(dst.rows), len(a.rows))

	var (
		out  Matrix[T, C, RC]
		i, k int
		av   T
	)
	// Row i of the product is Σk a(i,k)·b.row(k).
	for i = 0; i < len(a.rows); i++ {
		acc := &out.rows[i]
		for k = 0; k < len(b.rows); k++ {
			av = a.rows[i].At(k)
			acc.AddAssign(b.rows[k].MulScalar(av))
		}
	}
	*dst = out

	return dst
}

// MulVec returns m × v as a Rows×1 matrix. RC names the result's row array and
// must hold m.Rows() rows.
//
//	col := matrix.MulVec[[2]vector.Vector[int64, [1]int64]](m, v)
func MulVec[RC Rows[T, [1]T], T vector.Number, C vector.Array[T], R Rows[T, C]](
	m Matrix[T, C, R], v vector.Vector[T, C],
) Matrix[T, [1]T, RC] {
	var out Matrix[T, [1]T, RC]
	MulVecInto(&out, m, v)

	return out
}

// MulVecInto stores m × v in the column matrix dst and returns dst.
func MulVecInto[T vector.Number, C vector.Array[T], R Rows[T, C], RC Rows[T, [1]T]](
	dst *Matrix[T, [1]T, RC], m Matrix[T, C, R], v vector.Vector[T, C],
) *Matrix[T, [1]T, RC] {
	contract.SameLen(opMulVec, len(dst.rows), len(m.rows))
	for i := 0; i < len(m.rows); i++ {
		dst.rows[i] = vector.V1(m.rows[i].Dot(v))
	}

	return dst
}

// TransposeInto stores the transpose of m in dst and returns dst. dst must have
// m.Cols() rows and m.Rows() columns.
func TransposeInto[T vector.Number, C vector.Array[T], R Rows[T, C], TC vector.Array[T], TR Rows[T, TC]](
	dst *Matrix[T, TC, TR], m Matrix[T, C, R],
) *Matrix[T, TC, TR] {
	contract.SameLen(opTranspose, len(dst.rows), m.Cols())
	contract.SameLen(opTranspose, dst.Cols(), len(m.rows))

	var out Matrix[T, TC, TR]
	for i := 0; i < len(m.rows); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.rows[j].Set(i, m.rows[i].At(j))
		}
	}
	*dst = out

	return dst
}

// SetIdentity overwrites m with the identity matrix and returns m. m must be square.
func (m *Matrix[T, C, R]) SetIdentity() *Matrix[T, C, R] {
	contract.Square(opSetIdentity, len(m.rows), m.Cols())
	var zero Matrix[T, C, R]
	*m = zero
	for i := 0; i < len(m.rows); i++ {
		m.rows[i].Set(i, 1)
	}

	return m
}
