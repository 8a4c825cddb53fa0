// Package vector provides Vector, a fixed-dimension value vector over an arithmetic
// element type.
//
// 🚀 What is a Vector?
//
//	Vector[T, A] stores exactly len(A) elements of type T inline, where A is an
//	array type such as [3]float64. The array type carries the dimension, so two
//	vectors of different dimension are different Go types:
//
//	  v := vector.V3(1.0, 2.0, 3.0)          // Vector[float64, [3]float64]
//	  w := vector.Of[int64]([4]int64{1, 2})  // Vector[int64, [4]int64] = (1, 2, 0, 0)
//
// ✨ Key features:
//   - value semantics: assignment copies, no aliasing, zero value is the zero vector
//   - same-dimension arithmetic as methods (Add, Sub, Mul, Div, Dot, ...), checked
//     by the compiler
//   - cross-dimension arithmetic and ordering as package functions that treat the
//     shorter operand as zero-padded (Add, Sub, Mul, Div, Compare, Less, ...)
//   - Cross only for 3-element vectors and Neg only for signed element types; misuse
//     does not compile
//   - fmt.Formatter and io.WriterTo producing "(e0, e1, ..., eN-1)"
//
// ⚠️ Contracts:
//
//	Out-of-range indices, zero divisors and result types whose length does not fit
//	the cross-dimension rule are programmer errors. They panic with an error that
//	wraps ErrOutOfRange, ErrDivideByZero or ErrDimensionMismatch. Build with the
//	tag fixedmath_unchecked to compile the checks out.
//
// ⚙️ Aliases:
//
//	Vec1..Vec4 aliases per element type (Vec3F64, Vec2I32, ...) are generated by
//	cmd/aliasgen and enabled with build tags fixedmath_int8 ... fixedmath_double
//	or fixedmath_all.
package vector

//go:generate go run ../cmd/aliasgen -pkg vector -output .
