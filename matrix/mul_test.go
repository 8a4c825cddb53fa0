// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixedmath/matrix"
	"github.com/katalvlaran/fixedmath/vector"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	a, b := fixtureA(), fixtureB()
	want := mat2x4{}.WithRows(
		[4]int64{38, 44, 50, 56},
		[4]int64{83, 98, 113, 128},
	)

	require.Equal(t, want, matrix.Mul[[2]row4](a, b))

	var dst mat2x4
	got := matrix.MulInto(&dst, a, b)
	require.Same(t, &dst, got)
	require.Equal(t, want, dst)

	// Each element is the dot product of a row of a with a column of b.
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			var sum int64
			for k := 0; k < a.Cols(); k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			require.Equal(t, sum, want.At(i, j), "(%d,%d)", i, j)
		}
	}
}

func TestMulIdentity(t *testing.T) {
	a := fixtureA()

	var i3 mat3x3
	i3.SetIdentity()
	require.Equal(t, a, matrix.Mul[[2]row3](a, i3))

	var i2 mat2x2
	i2.SetIdentity()
	require.Equal(t, a, matrix.Mul[[2]row3](i2, a))

	// SetIdentity clears previous contents.
	m := mat2x2{}.WithRows([2]int64{5, 6}, [2]int64{7, 8})
	m.SetIdentity()
	require.Equal(t, i2, m)
}

// TestMulIntoAlias checks that dst may be one of the operands.
func TestMulIntoAlias(t *testing.T) {
	m := mat2x2{}.WithRows([2]int64{1, 1}, [2]int64{0, 1})
	want := mat2x2{}.WithRows([2]int64{1, 2}, [2]int64{0, 1})

	matrix.MulInto(&m, m, m)
	require.Equal(t, want, m)
}

func TestMulFloat(t *testing.T) {
	type row = vector.Vector[float64, [2]float64]
	rot := matrix.FromRows[float64, [2]row]([2]float64{0, -1}, [2]float64{1, 0})

	// Four quarter turns are the identity.
	r := rot
	for i := 0; i < 3; i++ {
		r = matrix.Mul[[2]row](r, rot)
	}
	var id matrix.Matrix[float64, [2]float64, [2]row]
	id.SetIdentity()
	require.True(t, id.Equal(r), "got %v", r)
}

func TestMulVec(t *testing.T) {
	a := fixtureA()
	v := vector.V3[int64](1, 0, -1)

	got := matrix.MulVec[[2]row1](a, v)
	require.Equal(t, mat2x1{}.WithRows([1]int64{-2}, [1]int64{-2}), got)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 1, got.Cols())

	// Same as multiplying by the vector as a 3×1 matrix.
	col := matrix.FromVectors[[3]row1](vector.V1[int64](1), vector.V1[int64](0), vector.V1[int64](-1))
	require.Equal(t, got, matrix.Mul[[2]row1](a, col))

	var dst mat2x1
	matrix.MulVecInto(&dst, a, vector.V3[int64](1, 1, 1))
	require.Equal(t, int64(6), dst.At(0, 0))
	require.Equal(t, int64(15), dst.At(1, 0))
}

func TestTranspose(t *testing.T) {
	a := fixtureA()

	var at mat3x2
	got := matrix.TransposeInto(&at, a)
	require.Same(t, &at, got)
	require.Equal(t, mat3x2{}.WithRows([2]int64{1, 4}, [2]int64{2, 5}, [2]int64{3, 6}), at)

	var back mat2x3
	matrix.TransposeInto(&back, at)
	require.Equal(t, a, back)

	// (A·B)ᵀ = Bᵀ·Aᵀ
	b := fixtureB()
	var bt matrix.Matrix[int64, [3]int64, [4]row3]
	matrix.TransposeInto(&bt, b)

	var abT matrix.Matrix[int64, [2]int64, [4]row2]
	matrix.TransposeInto(&abT, matrix.Mul[[2]row4](a, b))
	require.Equal(t, abT, matrix.Mul[[4]row2](bt, at))

	// Square transposition in place.
	sq := mat2x2{}.WithRows([2]int64{1, 2}, [2]int64{3, 4})
	matrix.TransposeInto(&sq, sq)
	require.Equal(t, mat2x2{}.WithRows([2]int64{1, 3}, [2]int64{2, 4}), sq)
}
