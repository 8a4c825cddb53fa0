// SPDX-License-Identifier: MIT
// Package vector: same-dimension and scalar arithmetic.
//
// Design:
//   - Binary methods take an operand of the receiver's own type, so the compiler
//     rejects a dimension mismatch. Cross-dimension forms live in mixed.go.
//   - Value-receiver methods return a new vector; the *Assign forms mutate the
//     receiver and return it for chaining.
//   - Division asserts every divisor is non-zero (ErrDivideByZero), for floats too.
//
// Complexity: O(N) for every operation.
package vector

import "github.com/katalvlaran/fixedmath/internal/contract"

const (
	ctxDiv             = "Vector.Div"
	ctxDivAssign       = "Vector.DivAssign"
	ctxDivScalar       = "Vector.DivScalar"
	ctxDivScalarAssign = "Vector.DivScalarAssign"
)

// Neg returns -v. Only signed integer and float element types can be negated;
// Neg on an unsigned vector does not compile.
func Neg[T Signed, A Array[T]](v Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] = -v.data[i]
	}

	return v
}

// Pos returns v unchanged (unary plus).
func (v Vector[T, A]) Pos() Vector[T, A] {
	return v
}

// Add returns v + o.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += o.data[i]
	}

	return v
}

// Sub returns v - o.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= o.data[i]
	}

	return v
}

// Mul returns the element-wise product of v and o.
func (v Vector[T, A]) Mul(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= o.data[i]
	}

	return v
}

// Div returns the element-wise quotient v / o. Every element of o must be non-zero.
func (v Vector[T, A]) Div(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		contract.NonZero(ctxDiv, o.data[i])
		v.data[i] /= o.data[i]
	}

	return v
}

// AddAssign sets v = v + o and returns v.
func (v *Vector[T, A]) AddAssign(o Vector[T, A]) *Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += o.data[i]
	}

	return v
}

// SubAssign sets v = v - o and returns v.
func (v *Vector[T, A]) SubAssign(o Vector[T, A]) *Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= o.data[i]
	}

	return v
}

// MulAssign sets v to the element-wise product of v and o and returns v.
func (v *Vector[T, A]) MulAssign(o Vector[T, A]) *Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= o.data[i]
	}

	return v
}

// DivAssign sets v to the element-wise quotient v / o and returns v.
// Only equal dimensions are accepted. All divisors are checked before v is
// modified.
func (v *Vector[T, A]) DivAssign(o Vector[T, A]) *Vector[T, A] {
	for i := 0; i < len(o.data); i++ {
		contract.NonZero(ctxDivAssign, o.data[i])
	}
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= o.data[i]
	}

	return v
}

// ---------- scalar broadcast ----------

// AddScalar returns v with k added to every element.
func (v Vector[T, A]) AddScalar(k T) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += k
	}

	return v
}

// SubScalar returns v with k subtracted from every element.
func (v Vector[T, A]) SubScalar(k T) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= k
	}

	return v
}

// MulScalar returns v scaled by k.
func (v Vector[T, A]) MulScalar(k T) Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= k
	}

	return v
}

// DivScalar returns v with every element divided by k. k must be non-zero.
func (v Vector[T, A]) DivScalar(k T) Vector[T, A] {
	contract.NonZero(ctxDivScalar, k)
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= k
	}

	return v
}

// AddScalarAssign adds k to every element of v and returns v.
func (v *Vector[T, A]) AddScalarAssign(k T) *Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += k
	}

	return v
}

// SubScalarAssign subtracts k from every element of v and returns v.
func (v *Vector[T, A]) SubScalarAssign(k T) *Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] -= k
	}

	return v
}

// MulScalarAssign scales v by k and returns v.
func (v *Vector[T, A]) MulScalarAssign(k T) *Vector[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] *= k
	}

	return v
}

// DivScalarAssign divides every element of v by k and returns v. k must be non-zero.
func (v *Vector[T, A]) DivScalarAssign(k T) *Vector[T, A] {
	contract.NonZero(ctxDivScalarAssign, k)
	for i := 0; i < len(v.data); i++ {
		v.data[i] /= k
	}

	return v
}
