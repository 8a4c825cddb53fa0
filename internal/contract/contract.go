// SPDX-License-Identifier: MIT
// Package contract is the precondition-check layer shared by vector and matrix.
//
// Purpose:
//   - Give every kernel one way to assert bounds, divisors and dimension relations.
//   - Keep the "no recoverable error path" policy: a violated precondition is a
//     programmer error and panics with a wrapped sentinel error.
//
// Configuration:
//   - Checks are on by default. Building with the tag fixedmath_unchecked sets
//     Enabled to false and every check below compiles to nothing; the behavior of a
//     violated precondition is then whatever the Go runtime does (unspecified here).
//
// Panic values:
//   - Always an error built as fmt.Errorf("<op>...: %w", sentinel), so callers that
//     recover can match with errors.Is(err, ErrOutOfRange) and friends.
package contract

import (
	"errors"
	"fmt"
)

// Sentinels. Every message is prefixed with "fixedmath:" for grep-ability.
var (
	// ErrOutOfRange reports an element, row or column index outside [0, n).
	ErrOutOfRange = errors.New("fixedmath: index out of range")

	// ErrDivideByZero reports a scalar or element divisor equal to the type's zero.
	ErrDivideByZero = errors.New("fixedmath: division by zero")

	// ErrDimensionMismatch reports operand dimensions with no defined relation,
	// e.g. a result type whose length is not max(N, M), or an inner dimension
	// mismatch in a matrix product.
	ErrDimensionMismatch = errors.New("fixedmath: dimension mismatch")

	// ErrNonSquare reports a square-only matrix operation on a non-square shape.
	ErrNonSquare = errors.New("fixedmath: matrix is not square")
)

// Fail panics with err wrapped in op context. It ignores Enabled: callers use it
// only after their own Enabled-guarded test.
func Fail(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

// Index asserts 0 <= i < n.
// Complexity: O(1).
func Index(op string, i, n int) {
	if Enabled && (i < 0 || i >= n) {
		panic(fmt.Errorf("%s(%d): %w (len %d)", op, i, ErrOutOfRange, n))
	}
}

// Index2 asserts 0 <= r < rows and 0 <= c < cols.
func Index2(op string, r, c, rows, cols int) {
	if Enabled && (r < 0 || r >= rows || c < 0 || c >= cols) {
		panic(fmt.Errorf("%s(%d,%d): %w (shape %dx%d)", op, r, c, ErrOutOfRange, rows, cols))
	}
}

// NonZero asserts that the divisor x is not the zero value of its type.
func NonZero[T comparable](op string, x T) {
	var zero T
	if Enabled && x == zero {
		Fail(op, ErrDivideByZero)
	}
}

// SameLen asserts got == want for a dimension that the type system could not relate.
func SameLen(op string, got, want int) {
	if Enabled && got != want {
		panic(fmt.Errorf("%s: %w (got %d, want %d)", op, ErrDimensionMismatch, got, want))
	}
}

// AtMost asserts n <= limit, e.g. a compound-assignment operand that must not be
// longer than the receiver.
func AtMost(op string, n, limit int) {
	if Enabled && n > limit {
		panic(fmt.Errorf("%s: %w (%d exceeds %d)", op, ErrDimensionMismatch, n, limit))
	}
}

// Square asserts rows == cols.
func Square(op string, rows, cols int) {
	if Enabled && rows != cols {
		panic(fmt.Errorf("%s: %w (shape %dx%d)", op, ErrNonSquare, rows, cols))
	}
}
