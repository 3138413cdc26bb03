// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package harness times the candidates and checks that they agree.
package harness

// =============================================================================
// CORRECTNESS ORACLE
// =============================================================================

// Agree reports whether every timing carries the same checksum. Equality
// is exact: in-range values take identical arithmetic paths in every
// candidate, so any tolerance would only hide real drift between the
// variants. Zero or one timings agree trivially, which is what makes the
// empty-dataset run pass.
func Agree(timings []TimingResult) bool {
	if len(timings) < 2 {
		return true
	}
	first := timings[0].Checksum
	for _, t := range timings[1:] {
		if t.Checksum != first {
			return false
		}
	}
	return true
}
