// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report turns raw timings into the comparison the UI renders.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/clampbench/internal/dataset"
	"github.com/jeranaias/clampbench/internal/harness"
)

// =============================================================================
// RUN REPORT
// =============================================================================

// RunReport is the complete outcome of one scenario run. Built fresh each
// run; prior reports for the same scenario are overwritten in the history.
type RunReport struct {
	ID       uuid.UUID
	Scenario string
	Run      int // run counter value at trigger time
	Timings  []harness.TimingResult // registration order
	Equal    bool
	Fastest  string
	Relative map[string]float64
	Stats    dataset.Stats
	Built    time.Time
}

// Build computes the derived fields from one scenario's timings. The
// fastest candidate is the first minimum in registration order; its
// relative speed is exactly 1.00 because every ratio divides by the same
// floored minimum.
func Build(scenario string, run int, timings []harness.TimingResult, stats dataset.Stats) *RunReport {
	r := &RunReport{
		ID:       uuid.New(),
		Scenario: scenario,
		Run:      run,
		Timings:  timings,
		Equal:    harness.Agree(timings),
		Relative: make(map[string]float64, len(timings)),
		Stats:    stats,
		Built:    time.Now(),
	}

	if len(timings) == 0 {
		return r
	}

	min := timings[0].Ticks
	r.Fastest = timings[0].Candidate
	for _, t := range timings[1:] {
		if t.Ticks < min {
			min = t.Ticks
			r.Fastest = t.Candidate
		}
	}
	// Floor at one tick so a zero-duration fastest time cannot divide by
	// zero (empty datasets time in well under a tick).
	if min < 1 {
		min = 1
	}

	for _, t := range timings {
		ticks := t.Ticks
		if ticks < 1 {
			ticks = 1
		}
		r.Relative[t.Candidate] = float64(ticks) / float64(min)
	}
	return r
}

// Verdict returns the equality verdict the way the UI prints it.
func (r *RunReport) Verdict() string {
	if r.Equal {
		return "YES"
	}
	return "NO"
}

// =============================================================================
// FORMATTING HELPERS
// =============================================================================

// FormatElapsed formats a per-candidate total for display, one consistent
// unit per magnitude.
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fus", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// FormatRelative renders a relative speed at the contract's 2-decimal
// precision.
func FormatRelative(rel float64) string {
	return fmt.Sprintf("%.2fx", rel)
}

// FormatChecksum renders a checksum compactly; checksums are disagreement
// detectors, not quantities, so full precision is noise.
func FormatChecksum(sum float64) string {
	return fmt.Sprintf("%.6g", sum)
}
