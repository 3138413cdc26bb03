// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package harness times the candidates and checks that they agree.
package harness

import (
	"context"
	"testing"

	"github.com/jeranaias/clampbench/internal/candidate"
	"github.com/jeranaias/clampbench/internal/config"
	"github.com/jeranaias/clampbench/internal/dataset"
)

func testRunner() *Runner {
	cfg := config.Default()
	cfg.Bench.WarmupRounds = 10 // keep tests quick; policy still uniform
	return NewRunnerSeeded(cfg, 1)
}

// =============================================================================
// CLAMP SCENARIO TESTS
// =============================================================================

func TestRunClampScenario_RegistrationOrder(t *testing.T) {
	r := testRunner()
	timings, stats, err := r.RunClampScenario(context.Background(),
		dataset.Scenario{Label: "random uniform", Kind: dataset.RandomUniform}, 10000)
	if err != nil {
		t.Fatal(err)
	}

	clamps := candidate.Clamps()
	if len(timings) != len(clamps) {
		t.Fatalf("Got %d timings, want %d", len(timings), len(clamps))
	}
	for i, tr := range timings {
		if tr.Candidate != clamps[i].Name {
			t.Errorf("Timing %d: got %q, want %q", i, tr.Candidate, clamps[i].Name)
		}
		if tr.Ticks < 0 || tr.Elapsed < 0 {
			t.Errorf("Timing %q has negative duration", tr.Candidate)
		}
		if tr.Ticks != tr.Elapsed.Nanoseconds() {
			t.Errorf("Timing %q: ticks %d disagree with elapsed %v", tr.Candidate, tr.Ticks, tr.Elapsed)
		}
	}

	if stats.Total() != 10000 {
		t.Errorf("Stats total %d, want 10000", stats.Total())
	}
}

func TestRunClampScenario_CandidatesAgree(t *testing.T) {
	r := testRunner()
	for _, scn := range dataset.ClampScenarios() {
		timings, _, err := r.RunClampScenario(context.Background(), scn, 20000)
		if err != nil {
			t.Fatalf("%s: %v", scn.Label, err)
		}
		if !Agree(timings) {
			for _, tr := range timings {
				t.Logf("  %s: checksum %v", tr.Candidate, tr.Checksum)
			}
			t.Fatalf("%s: candidates disagree", scn.Label)
		}
	}
}

// ALL_BELOW with the default bounds is 1000 copies of -101, every output
// is -100, so every checksum is exactly -100000.
func TestRunClampScenario_AllBelowChecksum(t *testing.T) {
	r := testRunner()
	timings, stats, err := r.RunClampScenario(context.Background(),
		dataset.Scenario{Label: "all below", Kind: dataset.AllBelow}, 1000)
	if err != nil {
		t.Fatal(err)
	}

	for _, tr := range timings {
		if tr.Checksum != -100000 {
			t.Errorf("%s: checksum %v, want -100000", tr.Candidate, tr.Checksum)
		}
	}
	if stats.Below != 1000 || stats.Inside != 0 || stats.Above != 0 {
		t.Errorf("Stats %+v, want everything below", stats)
	}
}

func TestRunClampScenario_EmptyDataset(t *testing.T) {
	r := testRunner()
	timings, stats, err := r.RunClampScenario(context.Background(),
		dataset.Scenario{Label: "random uniform", Kind: dataset.RandomUniform}, 0)
	if err != nil {
		t.Fatalf("Empty dataset must be a defined case: %v", err)
	}

	for _, tr := range timings {
		if tr.Checksum != 0 {
			t.Errorf("%s: checksum %v, want 0 identity", tr.Candidate, tr.Checksum)
		}
	}
	if !Agree(timings) {
		t.Error("Empty run should agree trivially")
	}
	if stats.Total() != 0 {
		t.Errorf("Stats total %d, want 0", stats.Total())
	}
}

func TestRunClampScenario_BadLengthAbortsCleanly(t *testing.T) {
	r := testRunner()
	timings, _, err := r.RunClampScenario(context.Background(),
		dataset.Scenario{Label: "random uniform", Kind: dataset.RandomUniform}, -5)
	if err == nil {
		t.Fatal("Negative length should fail the run")
	}
	if timings != nil {
		t.Error("Failed run must not publish partial timings")
	}
}

func TestRunClampScenario_CancelledContext(t *testing.T) {
	r := testRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.RunClampScenario(ctx,
		dataset.Scenario{Label: "random uniform", Kind: dataset.RandomUniform}, 100)
	if err == nil {
		t.Fatal("Cancelled context should abort the run")
	}
}

// =============================================================================
// STRING SCENARIO TESTS
// =============================================================================

func TestRunUpperScenario_CandidatesAgree(t *testing.T) {
	r := testRunner()
	for _, scn := range dataset.UpperScenarios() {
		timings, err := r.RunUpperScenario(context.Background(), scn, 100, 512)
		if err != nil {
			t.Fatalf("%s: %v", scn.Label, err)
		}
		if len(timings) != len(candidate.Uppers()) {
			t.Fatalf("%s: got %d timings", scn.Label, len(timings))
		}
		if !Agree(timings) {
			t.Fatalf("%s: candidates disagree", scn.Label)
		}
		// 100 strings of 512 uppercase letters: checksum must be positive.
		if timings[0].Checksum <= 0 {
			t.Errorf("%s: suspicious checksum %v", scn.Label, timings[0].Checksum)
		}
	}
}

// All-upper input passes through untouched, so the output byte sum equals
// the input byte sum.
func TestRunUpperScenario_AllUpperPassthrough(t *testing.T) {
	cfg := config.Default()
	cfg.Bench.WarmupRounds = 0
	r := NewRunnerSeeded(cfg, 5)

	timings, err := r.RunUpperScenario(context.Background(),
		dataset.StringScenario{Label: "all upper", Kind: dataset.AllUpper}, 10, 64)
	if err != nil {
		t.Fatal(err)
	}

	// Regenerate the identical set from the same seed to compute the
	// expected input sum.
	check := NewRunnerSeeded(cfg, 5)
	set, err := check.gen.GenerateStrings(dataset.StringScenario{Kind: dataset.AllUpper}, 10, 64)
	if err != nil {
		t.Fatal(err)
	}
	var want uint64
	for _, s := range set {
		for _, b := range s {
			want += uint64(b)
		}
	}

	for _, tr := range timings {
		if tr.Checksum != float64(want) {
			t.Errorf("%s: checksum %v, want %v", tr.Candidate, tr.Checksum, float64(want))
		}
	}
}

func TestRunUpperScenario_EmptySet(t *testing.T) {
	r := testRunner()
	timings, err := r.RunUpperScenario(context.Background(),
		dataset.StringScenario{Label: "mixed case", Kind: dataset.MixedCase}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, tr := range timings {
		if tr.Checksum != 0 {
			t.Errorf("%s: checksum %v, want 0", tr.Candidate, tr.Checksum)
		}
	}
	if !Agree(timings) {
		t.Error("Empty run should agree trivially")
	}
}
