// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the clampbench TUI.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clampbench/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar showing which suite is on screen.
type Header struct {
	Title string
	Suite string
	Width int
	theme *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "clampbench",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSuite updates the displayed suite name.
func (h *Header) SetSuite(suite string) {
	h.Suite = suite
}

// Render draws the header line.
func (h *Header) Render() string {
	title := h.theme.HeaderTitle.Render(h.Title)
	subtitle := ""
	if h.Suite != "" {
		subtitle = h.theme.HeaderSubtitle.Render(fmt.Sprintf(" - %s suite", h.Suite))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, subtitle)
	return h.theme.Header.Width(h.Width).Render(line)
}
