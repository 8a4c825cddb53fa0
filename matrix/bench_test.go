// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the matrix kernels, using
// deterministic random fill.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixedmath/matrix"
	"github.com/katalvlaran/fixedmath/vector"
)

type (
	vec4f  = vector.Vector[float64, [4]float64]
	mat4f  = matrix.Matrix[float64, [4]float64, [4]vec4f]
	col4f  = matrix.Matrix[float64, [1]float64, [4]vector.Vector[float64, [1]float64]]
	vec16f = vector.Vector[float64, [16]float64]
	mat16f = matrix.Matrix[float64, [16]float64, [16]vec16f]
)

// sinks to defeat dead-code elimination
var (
	sinkM4  mat4f
	sinkM16 mat16f
	sinkC4  col4f
	sinkB   bool
)

// fillRand sets every element of m from a seeded source.
func fillRand[C vector.Array[float64], R matrix.Rows[float64, C]](m *matrix.Matrix[float64, C, R], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			m.Set(i, j, rng.Float64())
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	var x, y mat4f
	fillRand(&x, 1337)
	fillRand(&y, 4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = x.Add(y)
	}
}

func BenchmarkHadamard(b *testing.B) {
	b.ReportAllocs()
	var x, y mat4f
	fillRand(&x, 1)
	fillRand(&y, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM4 = x.Hadamard(y)
	}
}

func BenchmarkMul4(b *testing.B) {
	b.ReportAllocs()
	var x, y mat4f
	fillRand(&x, 11)
	fillRand(&y, 22)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matrix.MulInto(&sinkM4, x, y)
	}
}

func BenchmarkMul16(b *testing.B) {
	b.ReportAllocs()
	var x, y mat16f
	fillRand(&x, 33)
	fillRand(&y, 44)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matrix.MulInto(&sinkM16, x, y)
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	var x mat4f
	fillRand(&x, 55)
	v := x.Row(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matrix.MulVecInto(&sinkC4, x, v)
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	var x mat4f
	fillRand(&x, 66)
	y := x
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = x.Equal(y)
	}
}
