// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the clampbench TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/clampbench/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusRunning:
		return "Running..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// StatusBar is the bottom bar showing run state, the run counter, and key
// hints.
type StatusBar struct {
	Status   Status
	RunCount int
	Width    int
	theme    *styles.Theme
}

// NewStatusBar creates a StatusBar with default values.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// Render draws the status bar line.
func (s *StatusBar) Render() string {
	var statusStyle = s.theme.StatusReady
	switch s.Status {
	case StatusRunning:
		statusStyle = s.theme.StatusActive
	case StatusError:
		statusStyle = s.theme.StatusError
	}

	left := statusStyle.Render(s.Status.String())
	runs := s.theme.ShortcutDesc.Render(fmt.Sprintf(" | runs: %d", s.RunCount))

	hints := strings.Join([]string{
		s.theme.ShortcutKey.Render("r") + s.theme.ShortcutDesc.Render(" clamp"),
		s.theme.ShortcutKey.Render("s") + s.theme.ShortcutDesc.Render(" strings"),
		s.theme.ShortcutKey.Render("tab") + s.theme.ShortcutDesc.Render(" switch"),
		s.theme.ShortcutKey.Render("q") + s.theme.ShortcutDesc.Render(" quit"),
	}, "  ")

	return s.theme.StatusBar.Width(s.Width).Render(left + runs + "   " + hints)
}
