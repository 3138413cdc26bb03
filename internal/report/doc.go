// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report turns raw timings into the comparison the UI renders.
//
// Relative speed is normalized to the fastest candidate in the same run
// (fastest = 1.00), with the divisor floored at one tick so an empty or
// near-instant run still divides cleanly. Reports are kept in a bounded
// in-memory history with one slot per scenario, overwritten on re-run;
// nothing is persisted.
package report
