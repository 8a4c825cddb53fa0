// SPDX-License-Identifier: MIT

// Command aliasgen writes the opt-in shape aliases for packages vector and matrix.
//
// Usage:
//
//	aliasgen -pkg vector -output ./vector
//	aliasgen -pkg matrix -output ./matrix -kinds int32,double -max 3
//
// Or via go:generate from inside the package directory:
//
//	//go:generate go run ../cmd/aliasgen -pkg vector -output .
//
// One file is written per element kind (aliases_<kind>.go). Each carries the build
// constraint "fixedmath_<kind> || fixedmath_all", so the aliases exist only when
// the caller opts in.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	pkgName   = flag.String("pkg", "", "Target package: vector or matrix (required)")
	outputDir = flag.String("output", ".", "Output directory")
	kindList  = flag.String("kinds", "all", "Comma-separated element kinds ("+strings.Join(KindNames(), ",")+") or 'all'")
	maxDim    = flag.Int("max", DefaultMaxDim, "Largest vector dimension / matrix side to alias")
)

func main() {
	flag.Parse()

	if *pkgName == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	kinds, err := ParseKinds(*kindList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		Package:   *pkgName,
		OutputDir: *outputDir,
		Kinds:     kinds,
		MaxDim:    *maxDim,
	}

	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d alias files for package %s\n", len(files), *pkgName)
}
