// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bench provides the Bubble Tea model driving the benchmark UI.
package bench

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clampbench/internal/config"
	"github.com/jeranaias/clampbench/internal/dataset"
	"github.com/jeranaias/clampbench/internal/harness"
	"github.com/jeranaias/clampbench/internal/report"
)

// =============================================================================
// RUN MESSAGES
// =============================================================================

// Suite identifies which benchmark family a run belongs to.
type Suite int

const (
	SuiteClamp Suite = iota
	SuiteStrings
)

// String returns the display name for the suite.
func (s Suite) String() string {
	switch s {
	case SuiteClamp:
		return "clamp"
	case SuiteStrings:
		return "string"
	default:
		return "unknown"
	}
}

// suiteDoneMsg carries every scenario report of a completed run.
type suiteDoneMsg struct {
	suite   Suite
	reports []*report.RunReport
}

// suiteErrMsg carries a failed run. No partial reports accompany it.
type suiteErrMsg struct {
	suite Suite
	err   error
}

// ConfigReloadedMsg delivers a freshly-loaded configuration from the file
// watcher. It takes effect on the next run.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// =============================================================================
// RUN COMMANDS
// =============================================================================

// runClampSuite executes all four clamp scenarios and returns their
// reports as one message. The runner is built from the config captured at
// trigger time, so a mid-run config reload cannot skew the comparison.
func runClampSuite(cfg *config.Config, run int) tea.Cmd {
	return func() tea.Msg {
		runner := harness.NewRunner(cfg)
		reports := make([]*report.RunReport, 0, len(dataset.ClampScenarios()))

		for _, scn := range dataset.ClampScenarios() {
			timings, stats, err := runner.RunClampScenario(context.Background(), scn, cfg.Bench.DatasetLen)
			if err != nil {
				return suiteErrMsg{suite: SuiteClamp, err: err}
			}
			reports = append(reports, report.Build(scn.Label, run, timings, stats))
		}
		return suiteDoneMsg{suite: SuiteClamp, reports: reports}
	}
}

// runStringSuite executes the three string scenarios.
func runStringSuite(cfg *config.Config, run int) tea.Cmd {
	return func() tea.Msg {
		runner := harness.NewRunner(cfg)
		reports := make([]*report.RunReport, 0, len(dataset.UpperScenarios()))

		for _, scn := range dataset.UpperScenarios() {
			timings, err := runner.RunUpperScenario(context.Background(), scn,
				cfg.Strings.Count, cfg.Strings.Length)
			if err != nil {
				return suiteErrMsg{suite: SuiteStrings, err: err}
			}
			reports = append(reports, report.Build(scn.Label, run, timings, dataset.Stats{}))
		}
		return suiteDoneMsg{suite: SuiteStrings, reports: reports}
	}
}
