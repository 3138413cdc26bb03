// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the clampbench TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/clampbench/internal/report"
	"github.com/jeranaias/clampbench/internal/ui/styles"
	"github.com/jeranaias/clampbench/internal/util"
)

// =============================================================================
// REPORT VIEW
// =============================================================================

// Column widths for the comparison table. Fixed so successive runs line
// up and diff cleanly.
const (
	colCandidate = 14
	colElapsed   = 12
	colChecksum  = 16
	colRelative  = 10
)

// ReportView renders run reports in the TUI.
type ReportView struct {
	width   int
	height  int
	compact bool
	theme   *styles.Theme
}

// NewReportView creates a new report view.
func NewReportView(theme *styles.Theme, width, height int) *ReportView {
	return &ReportView{
		width:  width,
		height: height,
		theme:  theme,
	}
}

// SetSize updates the view dimensions.
func (v *ReportView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetCompact toggles the checksum column off for narrow terminals.
func (v *ReportView) SetCompact(compact bool) {
	v.compact = compact
}

// RenderSuite renders every stored report of a history, one panel per
// scenario in first-seen order.
func (v *ReportView) RenderSuite(h *report.History) string {
	if h == nil || h.Len() == 0 {
		return v.theme.Muted.Render("No results yet. Press r for the clamp suite or s for the string suite.")
	}

	var b strings.Builder
	for i, label := range h.Scenarios() {
		r, ok := h.Get(label)
		if !ok {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(v.RenderReport(r))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReport renders a single run report as a bordered panel.
func (v *ReportView) RenderReport(r *report.RunReport) string {
	if r == nil {
		return v.theme.Muted.Render("No report available")
	}

	var b strings.Builder

	b.WriteString(v.theme.ReportTitle.Render(fmt.Sprintf("%s (run #%d)", r.Scenario, r.Run)))
	b.WriteString("\n\n")
	b.WriteString(v.formatTable(r))
	b.WriteString("\n")
	b.WriteString(v.formatVerdict(r))

	if r.Stats.Total() > 0 {
		b.WriteString("\n")
		b.WriteString(v.formatDistribution(r))
	}

	return v.theme.ReportPanel.Render(b.String())
}

// formatTable renders the per-candidate rows in registration order.
func (v *ReportView) formatTable(r *report.RunReport) string {
	var b strings.Builder

	header := util.PadRight("candidate", colCandidate) +
		util.PadLeft("elapsed", colElapsed)
	if !v.compact {
		header += util.PadLeft("checksum", colChecksum)
	}
	header += util.PadLeft("relative", colRelative)

	b.WriteString(v.theme.TableHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(v.theme.Muted.Render(strings.Repeat("-", v.tableWidth())))
	b.WriteString("\n")

	for _, t := range r.Timings {
		row := util.PadRight(t.Candidate, colCandidate) +
			util.PadLeft(report.FormatElapsed(t.Elapsed), colElapsed)
		if !v.compact {
			row += util.PadLeft(report.FormatChecksum(t.Checksum), colChecksum)
		}
		row += util.PadLeft(report.FormatRelative(r.Relative[t.Candidate]), colRelative)

		style := v.theme.RowNormal
		if t.Candidate == r.Fastest {
			style = v.theme.RowFastest
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *ReportView) tableWidth() int {
	w := colCandidate + colElapsed + colRelative
	if !v.compact {
		w += colChecksum
	}
	return w
}

// formatVerdict renders the equality verdict distinctly from the timings:
// a NO is a correctness failure, not a slow candidate.
func (v *ReportView) formatVerdict(r *report.RunReport) string {
	label := "checksums equal: "
	if r.Equal {
		return label + v.theme.VerdictPass.Render("YES")
	}
	return label + v.theme.VerdictFail.Render("NO")
}

// formatDistribution renders the below/inside/above percentages.
func (v *ReportView) formatDistribution(r *report.RunReport) string {
	s := r.Stats
	return v.theme.Distribution.Render(fmt.Sprintf(
		"input: %s%% below, %s%% inside, %s%% above (%d values)",
		util.FloatToString(s.PercentBelow()),
		util.FloatToString(s.PercentInside()),
		util.FloatToString(s.PercentAbove()),
		s.Total(),
	))
}

// RenderRunError renders a failed run as a styled error panel.
func (v *ReportView) RenderRunError(err error) string {
	return v.theme.ErrorPanel.Render(fmt.Sprintf("Run failed: %s", err.Error()))
}
