// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the clampbench TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// REPORT STYLES
	// ==========================================================================

	ReportPanel   lipgloss.Style
	ReportTitle   lipgloss.Style
	TableHeader   lipgloss.Style
	RowNormal     lipgloss.Style
	RowFastest    lipgloss.Style
	Checksum      lipgloss.Style
	VerdictPass   lipgloss.Style
	VerdictFail   lipgloss.Style
	Distribution  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusReady  lipgloss.Style
	StatusActive lipgloss.Style
	StatusError  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// MISC STYLES
	// ==========================================================================

	ErrorPanel lipgloss.Style
	Spinner    lipgloss.Style
	Muted      lipgloss.Style
}

// NewTheme creates a theme tuned to the detected terminal capabilities.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Report panel
	t.ReportPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(1, 2)

	t.ReportTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.RowNormal = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.RowFastest = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.Checksum = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.VerdictPass = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.VerdictFail = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.Distribution = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusReady = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.StatusActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	t.StatusError = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Misc
	t.ErrorPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Foreground(Rose).
		Bold(true).
		Padding(1, 2)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
}
