// SPDX-License-Identifier: MIT

// Package matrix provides Matrix, a fixed-shape matrix stored as an array of
// vector.Vector rows.
//
// 🚀 What is a Matrix?
//
//	Matrix[T, C, R] holds len(R) rows, each a vector.Vector[T, C] of len(C)
//	columns, inline and by value. As with vectors, the shape lives in the type:
//
//	  type Mat2x3 = matrix.Matrix[int64, [3]int64, [2]vector.Vector[int64, [3]int64]]
//
//	  a := Mat2x3{}.WithRows([3]int64{1, 2, 3}, [3]int64{4, 5, 6})
//	  a.At(1, 2) // 6
//
// ✨ Key features:
//   - Add, Sub, Hadamard and Equal on same-shape operands; a shape mismatch does
//     not compile
//   - contraction (Mul, MulInto) with the inner dimension asserted once per call
//   - matrix × vector (MulVec, MulVecInto) producing a Rows×1 column matrix; the
//     vector's dimension is tied to the column count by the type system
//   - scalar broadcast with value and in-place forms
//   - "[(1, 2, 3), (4, 5, 6)]" text form via fmt.Formatter and io.WriterTo
//
// ⚠️ Contracts:
//
//	Row/column indices, divisors, result shapes the compiler cannot relate
//	(Mul, MulVec, TransposeInto) and square-only operations are checked at run
//	time and panic with an error wrapping ErrOutOfRange, ErrDivideByZero,
//	ErrDimensionMismatch or ErrNonSquare. The fixedmath_unchecked build tag
//	removes the checks.
//
// ⚙️ Aliases:
//
//	Mat{R}x{C} aliases for R, C in 1..4 (Mat3x3F64, Mat2x4I32, ...) are generated
//	by cmd/aliasgen behind the same build tags as the vector aliases.
package matrix

//go:generate go run ../cmd/aliasgen -pkg matrix -output .
