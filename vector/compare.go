// SPDX-License-Identifier: MIT
// Package vector: equality and lexicographic ordering across dimensions.
//
// Rules:
//   - The overlapping prefix min(N, M) is compared first, index by index.
//   - If it ties, the tail of the longer operand is compared against zero, as if the
//     shorter operand were zero-padded. (1,2) == (1,2,0); (1,2,3) < (1,2,3,4);
//     (1,2,3,-1) < (1,2,3).
//   - Equality tests a[i] != b[i], so a NaN element is never equal.
//   - Ordering tests a[i] < b[i] then a[i] > b[i]; an index where neither holds
//     (equal values, or a NaN) does not decide the order.
//
// Complexity: O(max(N, M)), early exit on the first deciding index.
package vector

// Compare returns -1, 0 or +1 as a orders before, level with, or after b.
func Compare[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) int {
	n, m := len(a.data), len(b.data)
	k := min(n, m)
	for i := 0; i < k; i++ {
		if a.data[i] < b.data[i] {
			return -1
		}
		if a.data[i] > b.data[i] {
			return +1
		}
	}
	// At most one of the two tails below is non-empty.
	for i := k; i < n; i++ {
		if a.data[i] > 0 {
			return +1
		}
		if a.data[i] < 0 {
			return -1
		}
	}
	for i := k; i < m; i++ {
		if b.data[i] > 0 {
			return -1
		}
		if b.data[i] < 0 {
			return +1
		}
	}

	return 0
}

// Equal reports whether a and b hold the same elements after zero-padding.
func Equal[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) bool {
	n, m := len(a.data), len(b.data)
	k := min(n, m)
	for i := 0; i < k; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	for i := k; i < n; i++ {
		if a.data[i] != 0 {
			return false
		}
	}
	for i := k; i < m; i++ {
		if b.data[i] != 0 {
			return false
		}
	}

	return true
}

// NotEqual is !Equal(a, b).
func NotEqual[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) bool {
	return !Equal(a, b)
}

// Less reports a < b.
func Less[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports a <= b.
func LessEqual[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) bool {
	return Compare(a, b) <= 0
}

// Greater reports a > b.
func Greater[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) bool {
	return Compare(a, b) > 0
}

// GreaterEqual reports a >= b.
func GreaterEqual[T Number, A Array[T], B Array[T]](a Vector[T, A], b Vector[T, B]) bool {
	return Compare(a, b) >= 0
}

// Equal reports whether v and o are element-wise equal.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	return Equal(v, o)
}

// Compare is the same-dimension form of the package-level Compare.
func (v Vector[T, A]) Compare(o Vector[T, A]) int {
	return Compare(v, o)
}

// Less reports v < o in lexicographic order.
func (v Vector[T, A]) Less(o Vector[T, A]) bool {
	return Compare(v, o) < 0
}
