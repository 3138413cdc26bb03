// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bench provides the Bubble Tea model driving the benchmark UI.
package bench

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clampbench/internal/config"
	"github.com/jeranaias/clampbench/internal/dataset"
	"github.com/jeranaias/clampbench/internal/harness"
	"github.com/jeranaias/clampbench/internal/report"
	"github.com/jeranaias/clampbench/internal/ui/styles"
)

func testModel() *Model {
	cfg := config.Default()
	// Small inputs keep test runs instant while exercising the full path.
	cfg.Bench.DatasetLen = 64
	cfg.Bench.WarmupRounds = 1
	cfg.Strings.Count = 4
	cfg.Strings.Length = 32
	return NewModel(cfg, styles.NewTheme(), 100, 40)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testDoneMsg(suite Suite) suiteDoneMsg {
	timings := []harness.TimingResult{
		{Candidate: "branchy", Ticks: 200, Elapsed: 200 * time.Nanosecond, Checksum: 10},
		{Candidate: "branchless", Ticks: 100, Elapsed: 100 * time.Nanosecond, Checksum: 10},
	}
	r := report.Build("random uniform", 1, timings, dataset.Stats{Inside: 64})
	return suiteDoneMsg{suite: suite, reports: []*report.RunReport{r}}
}

func TestModel_RunKeyStartsClampSuite(t *testing.T) {
	m := testModel()

	updated, cmd := m.Update(keyPress('r'))
	got := updated.(*Model)

	if got.state != StateRunning {
		t.Errorf("State after 'r' = %v, want StateRunning", got.state)
	}
	if got.RunCount() != 1 {
		t.Errorf("RunCount = %d, want 1", got.RunCount())
	}
	if cmd == nil {
		t.Fatal("Expected a command to start the suite")
	}
}

func TestModel_TriggerIgnoredWhileRunning(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyPress('r'))
	m = updated.(*Model)
	updated, cmd := m.Update(keyPress('s'))
	m = updated.(*Model)

	if m.RunCount() != 1 {
		t.Errorf("RunCount = %d, second trigger should be ignored", m.RunCount())
	}
	if cmd != nil {
		t.Error("No command should be issued while a run is active")
	}
}

func TestModel_SuiteDoneStoresReports(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyPress('r'))
	m = updated.(*Model)
	updated, _ = m.Update(testDoneMsg(SuiteClamp))
	m = updated.(*Model)

	if m.state != StateReady {
		t.Errorf("State = %v, want StateReady", m.state)
	}
	if m.clampHistory.Len() != 1 {
		t.Errorf("clampHistory.Len() = %d, want 1", m.clampHistory.Len())
	}
	if m.stringHistory.Len() != 0 {
		t.Error("String history must not receive clamp reports")
	}
}

func TestModel_SuiteErrShowsErrorState(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(keyPress('r'))
	m = updated.(*Model)
	updated, _ = m.Update(suiteErrMsg{suite: SuiteClamp, err: errors.New("dataset length -1 is negative")})
	m = updated.(*Model)

	if m.state != StateError {
		t.Errorf("State = %v, want StateError", m.state)
	}
	if !strings.Contains(m.View(), "dataset length -1 is negative") {
		t.Error("View should surface the run error")
	}
}

func TestModel_TabTogglesSuite(t *testing.T) {
	m := testModel()

	if m.activeSuite != SuiteClamp {
		t.Fatalf("Initial suite = %v, want SuiteClamp", m.activeSuite)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*Model)
	if m.activeSuite != SuiteStrings {
		t.Errorf("Suite after tab = %v, want SuiteStrings", m.activeSuite)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*Model)
	if m.activeSuite != SuiteClamp {
		t.Errorf("Suite after second tab = %v, want SuiteClamp", m.activeSuite)
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("Quit key should produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("Quit key produced %v, want tea.QuitMsg", msg)
	}
}

func TestModel_WindowSizeResizes(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = updated.(*Model)

	if m.width != 120 || m.height != 50 {
		t.Errorf("Size = %dx%d, want 120x50", m.width, m.height)
	}
	if m.viewport.Width != 120 {
		t.Errorf("Viewport width = %d, want 120", m.viewport.Width)
	}
}

func TestModel_ConfigReloadAppliesToNextRun(t *testing.T) {
	m := testModel()

	next := config.Default()
	next.Bench.DatasetLen = 10
	updated, _ := m.Update(ConfigReloadedMsg{Cfg: next})
	m = updated.(*Model)

	if m.cfg.Bench.DatasetLen != 10 {
		t.Errorf("DatasetLen = %d, reload should replace the config", m.cfg.Bench.DatasetLen)
	}
	if m.state != StateReady {
		t.Error("Config reload must not change the run state")
	}
}

func TestModel_ViewShowsHintsWhenEmpty(t *testing.T) {
	m := testModel()

	if !strings.Contains(m.View(), "No results yet") {
		t.Error("Fresh model should render the empty-history hint")
	}
}

func TestModel_RunCommandProducesDoneMsg(t *testing.T) {
	// Drive the real suite command end to end with tiny inputs.
	m := testModel()

	updated, cmd := m.Update(keyPress('r'))
	m = updated.(*Model)

	msg := drainBatch(t, cmd)
	done, ok := msg.(suiteDoneMsg)
	if !ok {
		t.Fatalf("Suite command produced %T, want suiteDoneMsg", msg)
	}
	if done.suite != SuiteClamp {
		t.Errorf("Suite = %v, want SuiteClamp", done.suite)
	}
	if len(done.reports) != len(dataset.ClampScenarios()) {
		t.Errorf("Reports = %d, want one per scenario (%d)",
			len(done.reports), len(dataset.ClampScenarios()))
	}

	updated, _ = m.Update(done)
	m = updated.(*Model)
	if m.clampHistory.Len() != len(dataset.ClampScenarios()) {
		t.Errorf("History holds %d scenarios, want %d",
			m.clampHistory.Len(), len(dataset.ClampScenarios()))
	}
}

// drainBatch runs cmd, unwrapping one level of tea.BatchMsg, and returns
// the first suite message found.
func drainBatch(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a command")
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return msg
	}
	for _, c := range batch {
		got := c()
		switch got.(type) {
		case suiteDoneMsg, suiteErrMsg:
			return got
		}
	}
	t.Fatal("Batch contained no suite message")
	return nil
}
