// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package candidate defines the transform implementations under test.
package candidate

import "math"

// =============================================================================
// CLAMP CANDIDATES
// =============================================================================

// ClampFunc constrains x into [lo, hi]. Implementations must be pure and
// must return non-finite x unchanged rather than trapping on the undefined
// comparisons it produces.
type ClampFunc func(x, lo, hi float64) float64

// Clamp is a named clamp implementation. Immutable after registration.
type Clamp struct {
	Name string
	Fn   ClampFunc
}

// clampTable is the registration-ordered candidate set. The order is the
// order reports render in.
var clampTable = []Clamp{
	{Name: "branchy", Fn: clampBranchy},
	{Name: "chained", Fn: clampChained},
	{Name: "sign-switch", Fn: clampSignSwitch},
	{Name: "branchless", Fn: clampBranchless},
	{Name: "stdlib", Fn: clampStdlib},
}

// Clamps returns the clamp candidates in registration order.
// Callers must not modify the returned slice.
func Clamps() []Clamp {
	return clampTable
}

// clampBranchy uses two sequential conditionals with early returns.
func clampBranchy(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// clampChained composes two conditional selects: first clamp from below,
// then clamp the intermediate from above.
func clampChained(x, lo, hi float64) float64 {
	y := x
	if x < lo {
		y = lo
	}
	z := y
	if y > hi {
		z = hi
	}
	return z
}

// clampSignSwitch derives a comparison key from the signs of the two bound
// deltas and branches on the five values the key can take. NaN input makes
// both signs zero, so the key collapses to 0 and x passes through; the
// default arm is the defined fallback for any key outside the table.
func clampSignSwitch(x, lo, hi float64) float64 {
	switch sign(x-lo) + sign(x-hi) {
	case -2, -1:
		return lo
	case 0:
		return x
	case 1, 2:
		return hi
	default:
		return x
	}
}

// clampBranchless selects a bound with mutually-exclusive 0/1 selector
// masks. Equality with a bound compares false on both strict comparisons,
// so boundary values raise neither mask. The identity case returns x
// before the blend instead of carrying a useX*x term: 0*x is NaN for
// infinite x, which would turn the saturating cases into NaN the moment x
// appears in the arithmetic. NaN raises neither mask and passes through.
func clampBranchless(x, lo, hi float64) float64 {
	useLo := boolToFloat(x < lo)
	useHi := boolToFloat(x > hi)
	if useLo+useHi == 0 {
		return x
	}
	return useLo*lo + useHi*hi
}

// clampStdlib is the platform-standard composition and the trusted baseline
// for the cross-candidate checksum comparison.
func clampStdlib(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// =============================================================================
// HELPERS
// =============================================================================

// sign returns -1, 0, or 1 for v. Zero and NaN both map to 0; the zero
// mapping is what keeps the sign-derived candidates from double-selecting
// when x sits exactly on a bound.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
