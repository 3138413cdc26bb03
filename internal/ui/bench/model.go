// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bench provides the Bubble Tea model driving the benchmark UI.
package bench

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clampbench/internal/config"
	"github.com/jeranaias/clampbench/internal/report"
	"github.com/jeranaias/clampbench/internal/ui/components"
	"github.com/jeranaias/clampbench/internal/ui/styles"
)

// =============================================================================
// BENCH STATE
// =============================================================================

// State represents the current state of the benchmark view.
type State int

const (
	StateReady   State = iota // Waiting for a trigger
	StateRunning              // A suite is executing
	StateError                // Showing a failed run
)

// =============================================================================
// BENCH MODEL
// =============================================================================

// Model is the Bubble Tea model for the benchmark view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Configuration; reloads apply to the next run only
	cfg *config.Config

	// Results, one history per suite
	clampHistory  *report.History
	stringHistory *report.History
	activeSuite   Suite

	// Run counter, incremented on every trigger
	runCount int

	// UI components
	header     *components.Header
	statusBar  *components.StatusBar
	reportView *components.ReportView
	viewport   viewport.Model
	spinner    spinner.Model

	// Key bindings
	keyMap KeyMap

	// Error state
	lastErr error
}

// NewModel creates the benchmark model.
func NewModel(cfg *config.Config, theme *styles.Theme, width, height int) *Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Spinner),
	)

	m := &Model{
		state:         StateReady,
		theme:         theme,
		width:         width,
		height:        height,
		cfg:           cfg,
		clampHistory:  report.NewHistory(),
		stringHistory: report.NewHistory(),
		activeSuite:   SuiteClamp,
		header:        components.NewHeader(theme),
		statusBar:     components.NewStatusBar(theme),
		reportView:    components.NewReportView(theme, width, height),
		viewport:      viewport.New(width, contentHeight(height)),
		spinner:       sp,
		keyMap:        DefaultKeyMap(),
	}

	m.reportView.SetCompact(cfg.UI.CompactMode)
	m.header.SetSuite(m.activeSuite.String())
	m.refreshContent()
	return m
}

// contentHeight leaves room for the header and status bar.
func contentHeight(total int) int {
	h := total - 3
	if h < 1 {
		h = 1
	}
	return h
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// RunCount returns the number of triggered runs so far.
func (m *Model) RunCount() int {
	return m.runCount
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.reportView.SetSize(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = contentHeight(msg.Height)
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != StateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case suiteDoneMsg:
		m.state = StateReady
		m.lastErr = nil
		h := m.historyFor(msg.suite)
		for _, r := range msg.reports {
			h.Put(r)
		}
		m.activeSuite = msg.suite
		m.header.SetSuite(m.activeSuite.String())
		m.refreshContent()
		return m, nil

	case suiteErrMsg:
		m.state = StateError
		m.lastErr = msg.err
		m.refreshContent()
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Cfg
		m.reportView.SetCompact(msg.Cfg.UI.CompactMode)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.RunClamp):
		return m.trigger(SuiteClamp)

	case key.Matches(msg, m.keyMap.RunStrings):
		return m.trigger(SuiteStrings)

	case key.Matches(msg, m.keyMap.ToggleSuite):
		if m.activeSuite == SuiteClamp {
			m.activeSuite = SuiteStrings
		} else {
			m.activeSuite = SuiteClamp
		}
		m.header.SetSuite(m.activeSuite.String())
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil
	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil
	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	return m, nil
}

// trigger starts a suite run unless one is already active. The config in
// hand at trigger time drives the whole run.
func (m *Model) trigger(suite Suite) (tea.Model, tea.Cmd) {
	if m.state == StateRunning {
		return m, nil
	}

	m.state = StateRunning
	m.lastErr = nil
	m.runCount++
	m.activeSuite = suite
	m.header.SetSuite(suite.String())

	var run tea.Cmd
	if suite == SuiteClamp {
		run = runClampSuite(m.cfg, m.runCount)
	} else {
		run = runStringSuite(m.cfg, m.runCount)
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m *Model) historyFor(suite Suite) *report.History {
	if suite == SuiteStrings {
		return m.stringHistory
	}
	return m.clampHistory
}

func (m *Model) refreshContent() {
	switch m.state {
	case StateError:
		m.viewport.SetContent(m.reportView.RenderRunError(m.lastErr))
	default:
		m.viewport.SetContent(m.reportView.RenderSuite(m.historyFor(m.activeSuite)))
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	m.statusBar.RunCount = m.runCount
	switch m.state {
	case StateRunning:
		m.statusBar.Status = components.StatusRunning
	case StateError:
		m.statusBar.Status = components.StatusError
	default:
		m.statusBar.Status = components.StatusReady
	}

	body := m.viewport.View()
	if m.state == StateRunning {
		body = m.spinner.View() + " measuring...\n\n" + body
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.Render(),
		m.theme.Container.Render(body),
		m.statusBar.Render(),
	)
}
