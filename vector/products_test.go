// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/katalvlaran/fixedmath/vector"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	require.Equal(t, int64(32), v3(1, 2, 3).Dot(v3(4, 5, 6)))
	require.Equal(t, int64(32), vector.Dot(v3(1, 2, 3), v3(4, 5, 6)))

	// Zero vector is absorbing; the dot is symmetric.
	var zero vec3
	require.Zero(t, zero.Dot(v3(7, 8, 9)))
	require.Equal(t, v3(4, 5, 6).Dot(v3(1, 2, 3)), v3(1, 2, 3).Dot(v3(4, 5, 6)))

	f := vector.V2(0.5, 0.25).Dot(vector.V2(2.0, 4.0))
	require.InDelta(t, 2.0, f, 1e-12)
}

// TestDotMixed checks the overlap sum against explicit zero padding.
func TestDotMixed(t *testing.T) {
	a, b := v2(1, 2), v3(4, 5, 6)
	require.Equal(t, int64(14), vector.Dot(a, b))
	require.Equal(t, int64(14), vector.Dot(b, a))
	require.Equal(t, vector.Resize[[3]int64](a).Dot(b), vector.Dot(a, b))
}

func TestCross(t *testing.T) {
	a, b := v3(1, 2, 3), v3(4, 5, 6)
	require.Equal(t, v3(-3, 6, -3), vector.Cross(a, b))
	require.Equal(t, vector.Neg(vector.Cross(a, b)), vector.Cross(b, a))

	// Orthogonal to both inputs.
	c := vector.Cross(a, b)
	require.Zero(t, c.Dot(a))
	require.Zero(t, c.Dot(b))

	ex, ey, ez := vector.V3(1.0, 0.0, 0.0), vector.V3(0.0, 1.0, 0.0), vector.V3(0.0, 0.0, 1.0)
	require.Equal(t, ez, vector.Cross(ex, ey))
	require.Equal(t, ex, vector.Cross(ey, ez))
	require.Equal(t, ey, vector.Cross(ez, ex))

	// Parallel vectors give the zero vector.
	require.Equal(t, vec3{}, vector.Cross(a, a.MulScalar(3)))
}

func TestSwap(t *testing.T) {
	v := v4(1, 2, 3, 4)
	got := v.Swap(0, 3)
	require.Same(t, &v, got)
	require.Equal(t, v4(4, 2, 3, 1), v)

	// Swapping twice restores the original; i == j is a no-op.
	v.Swap(0, 3).Swap(1, 1)
	require.Equal(t, v4(1, 2, 3, 4), v)

	w := v.Swapped(1, 2)
	require.Equal(t, v4(1, 3, 2, 4), w)
	require.Equal(t, v4(1, 2, 3, 4), v, "Swapped must not touch the receiver")
	require.Equal(t, v, w.Swapped(2, 1))
}
