// SPDX-License-Identifier: MIT
// Package vector: text rendering.
//
// A vector renders as a parenthesized, comma-separated list in index order:
// "(1, 2, 3)". Format applies the caller's verb, flags, width and precision to each
// element, so fmt.Sprintf("%.2f", v) yields "(1.00, 2.00, 3.00)". %v and %s use
// the element's default format.
package vector

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// Compile-time assertions for fmt/io conformance.
var (
	_ fmt.Stringer  = Vector[float64, [3]float64]{}
	_ fmt.Formatter = Vector[float64, [3]float64]{}
	_ io.WriterTo   = Vector[int, [2]int]{}
)

// render writes every element with the printf directive.
func (v Vector[T, A]) render(directive string) string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < len(v.data); i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, directive, v.data[i])
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// String implements fmt.Stringer.
func (v Vector[T, A]) String() string {
	return v.render("%v")
}

// Format implements fmt.Formatter.
func (v Vector[T, A]) Format(f fmt.State, verb rune) {
	if verb == 's' {
		verb = 'v'
	}
	_, _ = io.WriteString(f, v.render(fmt.FormatString(f, verb)))
}

// WriteTo implements io.WriterTo, writing the String form to w.
func (v Vector[T, A]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}
