// SPDX-License-Identifier: MIT
// Package vector: cross-dimension arithmetic (N vs M).
//
// Padding rules:
//   - The shorter operand behaves as if padded with zeros to the longer length.
//   - Add/Sub/Mul return a vector of the longer length. Go cannot compute
//     max(N, M) at the type level, so the caller names the result array type R
//     and the contract layer asserts len(R) == max(N, M).
//   - Mul multiplies the overlapping prefix; every position past min(N, M) is zero
//     (a product with the zero padding), never a copy of the longer operand.
//   - Div requires N <= M and returns the divisor's type. Positions past N are
//     zero; only the first N divisor elements are checked for zero.
//   - AddAssign/SubAssign/MulAssign accept an operand no longer than dst and touch
//     only the overlapping prefix of dst.
//
// Example:
//
//	a := vector.V2[int64](1, 2)
//	b := vector.V3[int64](3, 4, 5)
//	vector.Add[[3]int64](a, b) // (4, 6, 5)
//	vector.Mul[[3]int64](a, b) // (3, 8, 0)
//
// Complexity: O(max(N, M)).
package vector

import "github.com/katalvlaran/fixedmath/internal/contract"

const (
	ctxMixedAdd       = "vector.Add"
	ctxMixedSub       = "vector.Sub"
	ctxMixedMul       = "vector.Mul"
	ctxMixedDiv       = "vector.Div"
	ctxMixedAddAssign = "vector.AddAssign"
	ctxMixedSubAssign = "vector.SubAssign"
	ctxMixedMulAssign = "vector.MulAssign"
)

// checkResultLen asserts that a result of dimension r can hold max(n, m).
func checkResultLen(op string, r, n, m int) {
	contract.SameLen(op, r, max(n, m))
}

// Add returns a + b with the shorter operand zero-padded.
// len(R) must equal max(N, M).
func Add[R Array[T], T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) Vector[T, R] {
	out := Resize[R](a)
	checkResultLen(ctxMixedAdd, len(out.data), len(a.data), len(b.data))
	for i := 0; i < len(b.data); i++ {
		out.data[i] += b.data[i]
	}

	return out
}

// Sub returns a - b with the shorter operand zero-padded.
// len(R) must equal max(N, M).
func Sub[R Array[T], T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) Vector[T, R] {
	out := Resize[R](a)
	checkResultLen(ctxMixedSub, len(out.data), len(a.data), len(b.data))
	for i := 0; i < len(b.data); i++ {
		out.data[i] -= b.data[i]
	}

	return out
}

// Mul returns the element-wise product of a and b. Positions below min(N, M)
// hold a[i]*b[i]; the remaining positions are zero. len(R) must equal max(N, M).
func Mul[R Array[T], T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) Vector[T, R] {
	var out Vector[T, R]
	checkResultLen(ctxMixedMul, len(out.data), len(a.data), len(b.data))
	n := min(len(a.data), len(b.data))
	for i := 0; i < n; i++ {
		out.data[i] = a.data[i] * b.data[i]
	}

	return out
}

// Div returns the element-wise quotient a / b in b's dimension. Requires N <= M and
// b[i] != 0 for i < N. Positions N..M-1 of the result are zero.
func Div[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) Vector[T, B] {
	var out Vector[T, B]
	contract.AtMost(ctxMixedDiv, len(a.data), len(b.data))
	for i := 0; i < len(a.data); i++ {
		contract.NonZero(ctxMixedDiv, b.data[i])
		out.data[i] = a.data[i] / b.data[i]
	}

	return out
}

// AddAssign adds src to the leading elements of dst. Requires M <= N.
func AddAssign[T Number, A Array[T], B Array[T]](dst *Vector[T, A], src Vector[T, B]) *Vector[T, A] {
	contract.AtMost(ctxMixedAddAssign, len(src.data), len(dst.data))
	for i := 0; i < len(src.data); i++ {
		dst.data[i] += src.data[i]
	}

	return dst
}

// SubAssign subtracts src from the leading elements of dst. Requires M <= N.
func SubAssign[T Number, A Array[T], B Array[T]](dst *Vector[T, A], src Vector[T, B]) *Vector[T, A] {
	contract.AtMost(ctxMixedSubAssign, len(src.data), len(dst.data))
	for i := 0; i < len(src.data); i++ {
		dst.data[i] -= src.data[i]
	}

	return dst
}

// MulAssign multiplies the leading elements of dst by src. Requires M <= N.
// Elements of dst past M are left unchanged.
func MulAssign[T Number, A Array[T], B Array[T]](dst *Vector[T, A], src Vector[T, B]) *Vector[T, A] {
	contract.AtMost(ctxMixedMulAssign, len(src.data), len(dst.data))
	for i := 0; i < len(src.data); i++ {
		dst.data[i] *= src.data[i]
	}

	return dst
}
