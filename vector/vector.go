// SPDX-License-Identifier: MIT
// Package vector: construction, element access and iteration.
//
// Purpose:
//   - Build vectors from arrays, argument lists, a broadcast scalar, a slice, or
//     another vector of any dimension (Resize).
//   - Expose indexed and named (X/Y/Z) access over the same storage slots.
//
// Complexity quicksheet:
//   - Of/V1..V4/copy: O(1) for fixed N; Splat/Resize/FromSlice/Values: O(N);
//     At/Set/Ptr/X/Y/Z: O(1).
package vector

import (
	"iter"

	"github.com/katalvlaran/fixedmath/internal/contract"
)

// ---------- contract tags ----------

const (
	ctxAt        = "Vector.At"
	ctxSet       = "Vector.Set"
	ctxPtr       = "Vector.Ptr"
	ctxX         = "Vector.X"
	ctxY         = "Vector.Y"
	ctxZ         = "Vector.Z"
	ctxFromSlice = "vector.FromSlice"
)

// Of returns the vector holding the elements of a.
// An array literal with more than N elements does not compile; missing trailing
// elements are zero, as for any Go array literal.
//
//	v := vector.Of[int64]([3]int64{1, 2, 3})
func Of[T Number, A Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{data: a}
}

// V1 returns the 1-element vector (x).
func V1[T Number](x T) Vector[T, [1]T] {
	return Vector[T, [1]T]{data: [1]T{x}}
}

// V2 returns the 2-element vector (x, y).
func V2[T Number](x, y T) Vector[T, [2]T] {
	return Vector[T, [2]T]{data: [2]T{x, y}}
}

// V3 returns the 3-element vector (x, y, z).
func V3[T Number](x, y, z T) Vector[T, [3]T] {
	return Vector[T, [3]T]{data: [3]T{x, y, z}}
}

// V4 returns the 4-element vector (x, y, z, w).
func V4[T Number](x, y, z, w T) Vector[T, [4]T] {
	return Vector[T, [4]T]{data: [4]T{x, y, z, w}}
}

// Splat returns a vector with every element set to x.
//
//	ones := vector.Splat[[4]float32](float32(1))
func Splat[A Array[T], T Number](x T) Vector[T, A] {
	var v Vector[T, A]
	v.Fill(x)

	return v
}

// FromSlice copies s into a new vector. len(s) must equal N.
func FromSlice[A Array[T], T Number](s []T) Vector[T, A] {
	var v Vector[T, A]
	contract.SameLen(ctxFromSlice, len(s), len(v.data))
	for i := 0; i < len(v.data); i++ {
		v.data[i] = s[i]
	}

	return v
}

// Resize converts v to dimension len(B). The leading min(N, len(B)) elements are
// copied; when widening, the remaining elements are zero.
//
//	w := vector.Resize[[3]int64](vector.V2[int64](1, 2)) // (1, 2, 0)
func Resize[B Array[T], T Number, A Array[T]](v Vector[T, A]) Vector[T, B] {
	var out Vector[T, B]
	n := min(len(v.data), len(out.data))
	for i := 0; i < n; i++ {
		out.data[i] = v.data[i]
	}

	return out
}

// Fill sets every element to x and returns v.
func (v *Vector[T, A]) Fill(x T) *Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = x
	}

	return v
}

// Len returns the dimension N.
func (v Vector[T, A]) Len() int {
	return len(v.data)
}

// At returns element i. Requires 0 <= i < N.
func (v Vector[T, A]) At(i int) T {
	contract.Index(ctxAt, i, len(v.data))
	return v.data[i]
}

// Set assigns element i. Requires 0 <= i < N.
func (v *Vector[T, A]) Set(i int, x T) {
	contract.Index(ctxSet, i, len(v.data))
	v.data[i] = x
}

// Ptr returns a pointer to element i for in-place read/write.
// The pointer aliases v's storage and is valid as long as v is.
func (v *Vector[T, A]) Ptr(i int) *T {
	contract.Index(ctxPtr, i, len(v.data))
	return &v.data[i]
}

// X returns element 0.
func (v Vector[T, A]) X() T {
	contract.Index(ctxX, 0, len(v.data))
	return v.data[0]
}

// Y returns element 1. Requires N >= 2.
func (v Vector[T, A]) Y() T {
	i := 1
	contract.Index(ctxY, i, len(v.data))
	return v.data[i]
}

// Z returns element 2. Requires N >= 3.
func (v Vector[T, A]) Z() T {
	i := 2
	contract.Index(ctxZ, i, len(v.data))
	return v.data[i]
}

// SetX assigns element 0.
func (v *Vector[T, A]) SetX(x T) {
	contract.Index(ctxX, 0, len(v.data))
	v.data[0] = x
}

// SetY assigns element 1. Requires N >= 2.
func (v *Vector[T, A]) SetY(y T) {
	i := 1
	contract.Index(ctxY, i, len(v.data))
	v.data[i] = y
}

// SetZ assigns element 2. Requires N >= 3.
func (v *Vector[T, A]) SetZ(z T) {
	i := 2
	contract.Index(ctxZ, i, len(v.data))
	v.data[i] = z
}

// Array returns a copy of the backing array.
func (v Vector[T, A]) Array() A {
	return v.data
}

// Values returns the elements in a freshly allocated slice.
func (v Vector[T, A]) Values() []T {
	out := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		out[i] = v.data[i]
	}

	return out
}

// All yields (index, element) pairs in index order.
func (v Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v.data); i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
