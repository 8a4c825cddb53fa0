// SPDX-License-Identifier: MIT
// Package vector: dot and cross products, element swaps.
package vector

import "github.com/katalvlaran/fixedmath/internal/contract"

const (
	ctxSwap    = "Vector.Swap"
	ctxSwapped = "Vector.Swapped"
)

// Dot returns Σ v[i]*o[i], accumulated in T from zero.
// Complexity: O(N).
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	var acc T
	for i := 0; i < len(v.data); i++ {
		acc += v.data[i] * o.data[i]
	}

	return acc
}

// Dot returns the dot product of a and b when their dimensions differ.
// The sum runs over the overlapping prefix min(N, M), which equals the dot product
// of the zero-padded operands.
func Dot[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) T {
	var acc T
	n := min(len(a.data), len(b.data))
	for i := 0; i < n; i++ {
		acc += a.data[i] * b.data[i]
	}

	return acc
}

// Cross returns the 3D cross product a × b. It is defined for 3-element vectors
// only; any other dimension does not compile.
func Cross[T Number](a, b Vector[T, [3]T]) Vector[T, [3]T] {
	return Vector[T, [3]T]{data: [3]T{
		a.data[1]*b.data[2] - a.data[2]*b.data[1],
		a.data[2]*b.data[0] - a.data[0]*b.data[2],
		a.data[0]*b.data[1] - a.data[1]*b.data[0],
	}}
}

// Swap exchanges elements i and j in place and returns v.
func (v *Vector[T, A]) Swap(i, j int) *Vector[T, A] {
	contract.Index(ctxSwap, i, len(v.data))
	contract.Index(ctxSwap, j, len(v.data))
	v.data[i], v.data[j] = v.data[j], v.data[i]

	return v
}

// Swapped returns a copy of v with elements i and j exchanged.
func (v Vector[T, A]) Swapped(i, j int) Vector[T, A] {
	contract.Index(ctxSwapped, i, len(v.data))
	contract.Index(ctxSwapped, j, len(v.data))
	v.data[i], v.data[j] = v.data[j], v.data[i]

	return v
}
