// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fixedmath/vector"
	"github.com/stretchr/testify/require"
)

func TestEqualityAcrossDimensions(t *testing.T) {
	a, b, c := v2(1, 2), v2(1, 2), v3(1, 2, 0)

	require.True(t, vector.Equal(a, b))
	require.True(t, a.Equal(b))
	require.True(t, vector.Equal(a, c))
	require.True(t, vector.Equal(c, a))
	require.False(t, vector.NotEqual(c, a))

	d := v2(3, 4)
	require.True(t, vector.NotEqual(a, d))
	require.True(t, vector.NotEqual(c, d))
	require.False(t, a.Equal(d))

	// A non-zero tail breaks equality from either side.
	require.False(t, vector.Equal(a, v3(1, 2, 1)))
	require.False(t, vector.Equal(v3(1, 2, -1), a))
}

// TestOrdering walks the lexicographic cases, including padding tie-breaks.
func TestOrdering(t *testing.T) {
	base := v3(1, 2, 3)

	cases := []struct {
		name string
		cmp  int // Compare(lhs, rhs)
		rev  int // Compare(rhs, lhs)
		want int
	}{
		{"(1,2,3) vs (4,5,6)", vector.Compare(base, v3(4, 5, 6)), vector.Compare(v3(4, 5, 6), base), -1},
		{"(1,2,3) vs (1,2,3,4)", vector.Compare(base, v4(1, 2, 3, 4)), vector.Compare(v4(1, 2, 3, 4), base), -1},
		{"(1,2,3) vs (1,2,3,0)", vector.Compare(base, v4(1, 2, 3, 0)), vector.Compare(v4(1, 2, 3, 0), base), 0},
		{"(1,2,3) vs (1,2)", vector.Compare(base, v2(1, 2)), vector.Compare(v2(1, 2), base), +1},
		{"(1,2,3) vs (1,2,3,-1)", vector.Compare(base, v4(1, 2, 3, -1)), vector.Compare(v4(1, 2, 3, -1), base), +1},
		{"(1,2,3) vs (1,3)", vector.Compare(base, v2(1, 3)), vector.Compare(v2(1, 3), base), -1},
		{"(1,2,3) vs itself", vector.Compare(base, base), vector.Compare(base, base), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.cmp)
			require.Equal(t, -tc.want, tc.rev, "ordering must be antisymmetric")
		})
	}
}

func TestOrderingPredicates(t *testing.T) {
	a, b := v3(1, 2, 3), v3(4, 5, 6)

	require.True(t, vector.Less(a, b))
	require.True(t, a.Less(b))
	require.False(t, vector.Less(b, a))
	require.True(t, vector.LessEqual(a, b))
	require.False(t, vector.LessEqual(b, a))
	require.True(t, vector.Greater(b, a))
	require.True(t, vector.GreaterEqual(b, a))
	require.Equal(t, -1, a.Compare(b))

	require.True(t, vector.Less(a, v4(1, 2, 3, 4)))
	require.False(t, vector.Less(a, v4(1, 2, 3, 0)))
	require.True(t, vector.LessEqual(a, v4(1, 2, 3, 0)))
	require.True(t, vector.GreaterEqual(a, v4(1, 2, 3, 0)))
	require.True(t, vector.LessEqual(a, v4(1, 2, 3, 4)))

	require.False(t, vector.Less(a, v2(1, 2)))
	require.False(t, vector.LessEqual(a, v2(1, 2)))
	require.True(t, vector.Greater(a, v2(1, 2)))

	require.True(t, vector.Less(v4(1, 2, 3, -1), a))
	require.False(t, vector.GreaterEqual(v4(1, 2, 3, -1), a))
}

func TestOrderingUnsigned(t *testing.T) {
	a := vector.V2[uint8](1, 200)
	b := vector.V3[uint8](1, 200, 1)
	require.True(t, vector.Less(a, b))
	require.True(t, vector.Equal(a, vector.V3[uint8](1, 200, 0)))
}

// TestNaN pins NaN handling: never equal, and skipped by the ordering scan.
func TestNaN(t *testing.T) {
	nan := math.NaN()
	a := vector.V2(nan, 1.0)

	require.False(t, vector.Equal(a, a))
	require.True(t, vector.NotEqual(a, a))
	require.Equal(t, 0, vector.Compare(a, a))
	require.Equal(t, -1, vector.Compare(a, vector.V2(0.0, 2.0)))
	require.Equal(t, +1, vector.Compare(a, vector.V3(5.0, 0.0, 0.0)))
}
