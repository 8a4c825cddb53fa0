// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors carried by contract-violation panics.
// They are the same values as the vector sentinels.

package matrix

import "github.com/katalvlaran/fixedmath/internal/contract"

var (
	// ErrOutOfRange indicates a row or column index outside the matrix shape.
	ErrOutOfRange = contract.ErrOutOfRange

	// ErrDivideByZero indicates a zero scalar divisor.
	ErrDivideByZero = contract.ErrDivideByZero

	// ErrDimensionMismatch indicates incompatible shapes the compiler could not
	// reject, e.g. Mul where a.Cols() != b.Rows(), or a result with the wrong row count.
	ErrDimensionMismatch = contract.ErrDimensionMismatch

	// ErrNonSquare signals that a square matrix was required but the shape wasn't.
	ErrNonSquare = contract.ErrNonSquare
)
