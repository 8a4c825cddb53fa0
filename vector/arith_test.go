// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/katalvlaran/fixedmath/vector"
	"github.com/stretchr/testify/require"
)

func TestNegAndPos(t *testing.T) {
	require.Equal(t, v3(-1, 2, 0), vector.Neg(v3(1, -2, 0)))
	require.Equal(t, vector.V2(-0.5, 3.0), vector.Neg(vector.V2(0.5, -3.0)))
	require.Equal(t, v3(1, -2, 0), v3(1, -2, 0).Pos())

	v := v2(4, 5)
	require.Equal(t, v, vector.Neg(vector.Neg(v)))
}

func TestSameDimensionArithmetic(t *testing.T) {
	a, b := v2(1, 2), v2(3, 4)

	require.Equal(t, v2(4, 6), b.Add(a))
	require.Equal(t, v2(2, 2), v2(5, 6).Sub(b))
	require.Equal(t, v2(3, 8), a.Mul(b))
	require.Equal(t, v2(1, 2), v2(3, 4).Div(v2(3, 2)))

	// Value receivers leave the operands untouched.
	require.Equal(t, v2(1, 2), a)
	require.Equal(t, v2(3, 4), b)
}

func TestSameDimensionAssign(t *testing.T) {
	v := v2(3, 4)
	v.AddAssign(v2(1, 2))
	require.Equal(t, v2(4, 6), v)

	v = v2(5, 6)
	v.SubAssign(v2(3, 4))
	require.Equal(t, v2(2, 2), v)

	v = v2(1, 2)
	v.MulAssign(v2(3, 4))
	require.Equal(t, v2(3, 8), v)

	v = v2(3, 4)
	v.DivAssign(v2(3, 2))
	require.Equal(t, v2(1, 2), v)

	// Assign forms return the receiver for chaining.
	w := v3(1, 2, 3)
	got := w.AddAssign(v3(1, 1, 1)).MulScalarAssign(10).SubAssign(v3(0, 0, 40))
	require.Same(t, &w, got)
	require.Equal(t, v3(20, 30, 0), w)
}

func TestScalarArithmetic(t *testing.T) {
	v := v3(3, 4, 5)
	require.Equal(t, v3(4, 5, 6), v.AddScalar(1))
	require.Equal(t, v3(2, 3, 4), v.SubScalar(1))
	require.Equal(t, v3(6, 8, 10), v.MulScalar(2))
	require.Equal(t, v3(1, 2, 2), v3(3, 6, 8).DivScalar(3))
	require.Equal(t, v3(3, 4, 5), v)

	require.Equal(t, vector.V2(0.25, -1.0), vector.V2(1.0, -4.0).DivScalar(4))
}

func TestScalarAssign(t *testing.T) {
	v := v3(3, 4, 5)
	v.AddScalarAssign(1)
	require.Equal(t, v3(4, 5, 6), v)

	v = v3(3, 4, 5)
	v.SubScalarAssign(1)
	require.Equal(t, v3(2, 3, 4), v)

	v = v3(3, 4, 5)
	v.MulScalarAssign(2)
	require.Equal(t, v3(6, 8, 10), v)

	v = v3(3, 6, 8)
	v.DivScalarAssign(3)
	require.Equal(t, v3(1, 2, 2), v)
}

// TestScalarRoundTrip verifies (v*k)/k == v when no precision is lost.
func TestScalarRoundTrip(t *testing.T) {
	iv := v4(1, -2, 3, 40)
	for _, k := range []int64{1, 2, 7, -3} {
		require.Equal(t, iv, iv.MulScalar(k).DivScalar(k), "k=%d", k)
	}

	fv := vector.V3(0.1, -2.5, 1e10)
	for _, k := range []float64{0.5, 2, 1024, -8} {
		require.Equal(t, fv, fv.MulScalar(k).DivScalar(k), "k=%g", k)
	}

	uv := vector.V2[uint16](10, 300)
	require.Equal(t, uv, uv.MulScalar(3).DivScalar(3))
}
