// SPDX-License-Identifier: MIT

//go:build fixedmath_unchecked

package contract

// Enabled reports whether preconditions are checked in this build.
// The fixedmath_unchecked tag elides every check.
const Enabled = false
