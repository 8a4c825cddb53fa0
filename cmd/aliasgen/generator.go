// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// DefaultMaxDim is the largest dimension aliased when -max is not given.
const DefaultMaxDim = 4

// aliasLimit mirrors vector.MaxDim.
const aliasLimit = 16

var (
	// ErrUnknownPackage is returned for a -pkg other than vector or matrix.
	ErrUnknownPackage = errors.New("aliasgen: unknown package")

	// ErrUnknownKind is returned for an element kind outside KindNames.
	ErrUnknownKind = errors.New("aliasgen: unknown element kind")

	// ErrBadDim is returned when MaxDim is outside 1..16.
	ErrBadDim = errors.New("aliasgen: dimension out of range")
)

// Kind is one element type the aliases can be generated for.
type Kind struct {
	Tag    string // build-tag suffix, fixedmath_<Tag>
	GoType string // Go element type
	Suffix string // alias name suffix, e.g. Vec3F64
}

var kinds = []Kind{
	{Tag: "int8", GoType: "int8", Suffix: "I8"},
	{Tag: "int16", GoType: "int16", Suffix: "I16"},
	{Tag: "int32", GoType: "int32", Suffix: "I32"},
	{Tag: "int64", GoType: "int64", Suffix: "I64"},
	{Tag: "uint8", GoType: "uint8", Suffix: "U8"},
	{Tag: "uint16", GoType: "uint16", Suffix: "U16"},
	{Tag: "uint32", GoType: "uint32", Suffix: "U32"},
	{Tag: "uint64", GoType: "uint64", Suffix: "U64"},
	{Tag: "float", GoType: "float32", Suffix: "F32"},
	{Tag: "double", GoType: "float64", Suffix: "F64"},
}

// KindNames returns the recognized kind tags in generation order.
func KindNames() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Tag
	}

	return names
}

// ParseKinds resolves a comma-separated tag list. "all" selects every kind.
func ParseKinds(s string) ([]Kind, error) {
	var out []Kind
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return append([]Kind(nil), kinds...), nil
		}
		k, ok := lookupKind(p)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, p)
		}
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrUnknownKind)
	}

	return out, nil
}

func lookupKind(tag string) (Kind, bool) {
	for _, k := range kinds {
		if k.Tag == tag {
			return k, true
		}
	}

	return Kind{}, false
}

// Generator renders alias files for one package.
type Generator struct {
	Package   string // "vector" or "matrix"
	OutputDir string
	Kinds     []Kind
	MaxDim    int
}

// templateData is the input of the alias templates.
type templateData struct {
	Package string
	Kind    Kind
	Dims    []int
}

var templates = map[string]*template.Template{
	"vector": template.Must(template.New("vector").Parse(vectorTemplate)),
	"matrix": template.Must(template.New("matrix").Parse(matrixTemplate)),
}

const vectorTemplate = `// Code generated by aliasgen. DO NOT EDIT.

//go:build fixedmath_{{.Kind.Tag}} || fixedmath_all

package {{.Package}}

// Vector aliases over {{.Kind.GoType}}.
type (
{{- range .Dims}}
	Vec{{.}}{{$.Kind.Suffix}} = Vector[{{$.Kind.GoType}}, [{{.}}]{{$.Kind.GoType}}]
{{- end}}
)
`

const matrixTemplate = `// Code generated by aliasgen. DO NOT EDIT.

//go:build fixedmath_{{.Kind.Tag}} || fixedmath_all

package {{.Package}}

import "github.com/katalvlaran/fixedmath/vector"

// Matrix aliases over {{.Kind.GoType}}, named Mat<rows>x<cols>.
type (
{{- range $r := .Dims}}{{range $c := $.Dims}}
	Mat{{$r}}x{{$c}}{{$.Kind.Suffix}} = Matrix[{{$.Kind.GoType}}, [{{$c}}]{{$.Kind.GoType}}, [{{$r}}]vector.Vector[{{$.Kind.GoType}}, [{{$c}}]{{$.Kind.GoType}}]]
{{- end}}{{end}}
)
`

// FileName returns the output file name for kind k.
func FileName(k Kind) string {
	return "aliases_" + k.Tag + ".go"
}

// Render returns the gofmt-ed source for kind k.
func (g *Generator) Render(k Kind) ([]byte, error) {
	tmpl, ok := templates[g.Package]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPackage, g.Package)
	}
	if g.MaxDim < 1 || g.MaxDim > aliasLimit {
		return nil, fmt.Errorf("%w: %d", ErrBadDim, g.MaxDim)
	}

	data := templateData{Package: g.Package, Kind: k, Dims: make([]int, g.MaxDim)}
	for i := range data.Dims {
		data.Dims[i] = i + 1
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", k.Tag, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", k.Tag, err)
	}

	return src, nil
}

// Run writes one file per kind into OutputDir and returns the written paths.
func (g *Generator) Run() ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	files := make([]string, 0, len(g.Kinds))
	for _, k := range g.Kinds {
		src, err := g.Render(k)
		if err != nil {
			return files, err
		}
		path := filepath.Join(g.OutputDir, FileName(k))
		if err = os.WriteFile(path, src, 0o644); err != nil {
			return files, fmt.Errorf("write %s: %w", path, err)
		}
		files = append(files, path)
	}

	return files, nil
}
