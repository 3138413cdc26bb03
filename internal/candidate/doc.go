// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package candidate defines the fixed sets of functionally-equivalent
// transform implementations that clampbench races against each other.
//
// Two families are provided:
//
//   - Clamp candidates: constrain a float64 into [lo, hi]. Five coding
//     styles of the same arithmetic, from plain branches to a fully
//     branchless mask blend, plus the stdlib baseline the correctness
//     check trusts.
//   - Upper candidates: map ASCII lowercase bytes to uppercase, leaving
//     every other byte untouched. Three styles mirroring the clamp set.
//
// Candidates are registered once in package-level tables and never
// mutated. Table order is the display order; it has no effect on
// correctness. The functions themselves are deliberately free of any
// calls outside the standard library: they are the object under
// measurement, and the harness times nothing but them.
package candidate
