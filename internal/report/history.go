// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report turns raw timings into the comparison the UI renders.
package report

// =============================================================================
// BOUNDED HISTORY
// =============================================================================

// History retains the latest report per scenario. One writer (the active
// run) and strictly sequential runs make locking unnecessary.
type History struct {
	reports map[string]*RunReport
	order   []string // scenario labels in first-seen order
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{reports: make(map[string]*RunReport)}
}

// Put stores r in its scenario's slot, overwriting any previous run.
func (h *History) Put(r *RunReport) {
	if _, seen := h.reports[r.Scenario]; !seen {
		h.order = append(h.order, r.Scenario)
	}
	h.reports[r.Scenario] = r
}

// Get returns the latest report for a scenario.
func (h *History) Get(scenario string) (*RunReport, bool) {
	r, ok := h.reports[scenario]
	return r, ok
}

// Scenarios returns the scenario labels in first-seen order.
// Callers must not modify the returned slice.
func (h *History) Scenarios() []string {
	return h.order
}

// Len returns the number of occupied slots.
func (h *History) Len() int {
	return len(h.reports)
}

// Clear drops every slot.
func (h *History) Clear() {
	h.reports = make(map[string]*RunReport)
	h.order = nil
}
