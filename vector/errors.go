// SPDX-License-Identifier: MIT
// Package vector: sentinel errors carried by contract-violation panics.
//
// The sentinels are shared with package matrix (same values), so a recovered
// panic matches with errors.Is regardless of which package raised it.
package vector

import "github.com/katalvlaran/fixedmath/internal/contract"

var (
	// ErrOutOfRange: an index outside [0, N).
	ErrOutOfRange = contract.ErrOutOfRange

	// ErrDivideByZero: a scalar or element divisor equal to zero.
	ErrDivideByZero = contract.ErrDivideByZero

	// ErrDimensionMismatch: operand or result dimensions outside the
	// cross-dimension rules.
	ErrDimensionMismatch = contract.ErrDimensionMismatch
)
