// Package fixedmath is a library of fixed-size numeric containers: vectors and
// matrices whose dimensions are part of their Go type.
//
// 🚀 What is fixedmath?
//
//	Small dense linear algebra with value semantics and no heap allocation:
//		• Vector: N elements of an integer or floating-point type, stored inline
//		• Matrix: R rows of Vector, stored inline, row-major
//		• Arithmetic, dot/cross products, lexicographic comparison
//		• Matrix × matrix and matrix × vector contraction
//
// ✨ Why choose fixedmath?
//
//   - Shapes in the type – adding a 2D and a 3D vector with a method is a
//     compile error; cross-dimension forms are explicit package functions with
//     documented zero-padding rules
//   - Values, not pointers – assignment copies, the zero value is the zero
//     vector/matrix, no aliasing between instances
//   - Contracts, not error returns – bounds, divisors and runtime shape relations
//     are checked and panic with wrapped sentinel errors; the
//     fixedmath_unchecked build tag removes the checks
//   - Pure Go, generics only – one small dependency (golang.org/x/exp/constraints)
//
// Under the hood, the library is organized as:
//
//	vector/             Vector, construction, arithmetic, products, ordering, formatting
//	matrix/             Matrix built on vector rows, contraction, transpose, identity
//	internal/contract/  precondition checks and sentinel errors
//	cmd/aliasgen/       generator for the opt-in Vec3F64 / Mat4x4F32 style aliases
//	examples/           runnable programs (power iteration, drone routing)
//
// Quick example:
//
//	a := vector.V3(1.0, 2.0, 3.0)
//	b := vector.V3(4.0, 5.0, 6.0)
//	a.Dot(b)                            // 32
//	vector.Cross(a, b)                  // (-3, 6, -3)
//	vector.Add[[4]float64](a, vector.V4(1.0, 1.0, 1.0, 1.0)) // (2, 3, 4, 1)
//
//	go get github.com/katalvlaran/fixedmath
package fixedmath
