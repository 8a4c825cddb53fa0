// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers
//
// Purpose:
//   - Short aliases for the int64 shapes the tests use most, mirroring the
//     opt-in generated aliases without depending on their build tags.

package vector_test

import "github.com/katalvlaran/fixedmath/vector"

type (
	vec1 = vector.Vector[int64, [1]int64]
	vec2 = vector.Vector[int64, [2]int64]
	vec3 = vector.Vector[int64, [3]int64]
	vec4 = vector.Vector[int64, [4]int64]
)

func v2(x, y int64) vec2       { return vector.V2(x, y) }
func v3(x, y, z int64) vec3    { return vector.V3(x, y, z) }
func v4(x, y, z, w int64) vec4 { return vector.V4(x, y, z, w) }
