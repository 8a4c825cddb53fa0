// SPDX-License-Identifier: MIT

//go:build !fixedmath_unchecked

package contract

// Enabled reports whether preconditions are checked in this build.
const Enabled = true
