// SPDX-License-Identifier: MIT
// Package vector: element constraints and the Vector type.
//
// Dimension encoding:
//   - Go generics have no integer parameters, so the dimension travels as an array
//     type parameter A; len(A) is N. Array enumerates the supported lengths 1..16.
//   - Indexing a value of type A is legal because every member of the type set is an
//     array of T. Indices are always variables: a constant index above 0 would be
//     rejected against the [1]T member of the set.
package vector

import "golang.org/x/exp/constraints"

// MaxDim is the largest dimension Array admits.
const MaxDim = 16

// Number is the set of arithmetic element types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is the set of element types that support negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Array is the set of backing arrays of T with length 1..MaxDim.
type Array[T Number] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
}

// Vector is a fixed-dimension vector of len(A) elements of type T.
// The zero value is the zero vector. Vectors are values: assignment copies.
type Vector[T Number, A Array[T]] struct {
	data A // inline storage, len(data) == N
}
