// SPDX-License-Identifier: MIT
// Package matrix: text rendering.
//
// A matrix renders as its rows in brackets: "[(1, 2, 3), (4, 5, 6)]". Format passes
// the caller's verb, flags, width and precision down to every element.
package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fixedmath/vector"
)

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

var (
	_ fmt.Stringer  = Matrix[float64, [2]float64, [2]vector.Vector[float64, [2]float64]]{}
	_ fmt.Formatter = Matrix[float64, [2]float64, [2]vector.Vector[float64, [2]float64]]{}
	_ io.WriterTo   = Matrix[int, [3]int, [1]vector.Vector[int, [3]int]]{}
)

func (m Matrix[T, C, R]) render(directive string) string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < len(m.rows); i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, directive, m.rows[i])
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// String implements fmt.Stringer.
func (m Matrix[T, C, R]) String() string {
	return m.render("%v")
}

// Format implements fmt.Formatter.
func (m Matrix[T, C, R]) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, m.render(fmt.FormatString(f, verb)))
}

// WriteTo implements io.WriterTo.
func (m Matrix[T, C, R]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}
