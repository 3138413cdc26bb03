// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package harness times the candidates and checks that they agree.
package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/jeranaias/clampbench/internal/candidate"
	"github.com/jeranaias/clampbench/internal/config"
	"github.com/jeranaias/clampbench/internal/dataset"
)

// =============================================================================
// TIMING RESULT
// =============================================================================

// TimingResult is the outcome of sweeping one candidate over one dataset.
// Produced once per (scenario, candidate) pair and never mutated.
type TimingResult struct {
	Candidate string
	Ticks     int64 // elapsed nanoseconds from the monotonic clock
	Elapsed   time.Duration
	Checksum  float64 // sum of outputs; disagreement detector, not a digest
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes benchmark scenarios. Not safe for concurrent use; the
// UI guarantees one active run at a time.
type Runner struct {
	gen          *dataset.Generator
	warmupRounds int
}

// NewRunner builds a runner from the current configuration, seeding the
// dataset generator from the wall clock.
func NewRunner(cfg *config.Config) *Runner {
	return NewRunnerSeeded(cfg, time.Now().UnixNano())
}

// NewRunnerSeeded builds a runner with a fixed generator seed, for
// reproducible runs.
func NewRunnerSeeded(cfg *config.Config, seed int64) *Runner {
	bounds := dataset.Bounds{Lo: cfg.Bench.LowerBound, Hi: cfg.Bench.UpperBound}
	return &Runner{
		gen: dataset.NewGenerator(bounds, cfg.Bench.RandomSpread,
			cfg.Bench.BelowOffset, cfg.Bench.AboveOffset, seed),
		warmupRounds: cfg.Bench.WarmupRounds,
	}
}

// Bounds returns the clamp interval this runner measures against.
func (r *Runner) Bounds() dataset.Bounds {
	return r.gen.Bounds()
}

// RunClampScenario generates the scenario dataset, warms every clamp
// candidate up, and times each one over the shared dataset. Timings come
// back in registration order. A generation failure aborts with no partial
// results.
func (r *Runner) RunClampScenario(ctx context.Context, scn dataset.Scenario, length int) ([]TimingResult, dataset.Stats, error) {
	ds, err := r.gen.Generate(scn, length)
	if err != nil {
		return nil, dataset.Stats{}, fmt.Errorf("scenario %q: %w", scn.Label, err)
	}
	stats := dataset.Measure(ds, r.gen.Bounds())

	clamps := candidate.Clamps()
	r.warmUpClamps(clamps)

	timings := make([]TimingResult, 0, len(clamps))
	for _, c := range clamps {
		select {
		case <-ctx.Done():
			return nil, dataset.Stats{}, ctx.Err()
		default:
		}
		timings = append(timings, timeClamp(c, ds, r.gen.Bounds()))
	}
	return timings, stats, nil
}

// RunUpperScenario is the string suite analogue. Every candidate reads the
// same immutable string set and writes into one reused scratch buffer, so
// the comparison stays identical-input by construction.
func (r *Runner) RunUpperScenario(ctx context.Context, scn dataset.StringScenario, count, strLen int) ([]TimingResult, error) {
	set, err := r.gen.GenerateStrings(scn, count, strLen)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scn.Label, err)
	}

	uppers := candidate.Uppers()
	r.warmUpUppers(uppers)

	scratch := make([]byte, strLen)
	timings := make([]TimingResult, 0, len(uppers))
	for _, c := range uppers {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		timings = append(timings, timeUpper(c, set, scratch))
	}
	return timings, nil
}

// =============================================================================
// TIMED SWEEPS
// =============================================================================

// timeClamp measures one candidate over one dataset. The timed window
// starts after the dataset exists and ends before any teardown.
func timeClamp(c candidate.Clamp, ds dataset.Dataset, b dataset.Bounds) TimingResult {
	var sum float64

	start := time.Now()
	for _, x := range ds {
		sum += c.Fn(x, b.Lo, b.Hi)
	}
	elapsed := time.Since(start)

	return TimingResult{
		Candidate: c.Name,
		Ticks:     elapsed.Nanoseconds(),
		Elapsed:   elapsed,
		Checksum:  sum,
	}
}

// timeUpper measures one uppercase candidate. The checksum is the byte sum
// of every output buffer, which catches any per-byte disagreement.
func timeUpper(c candidate.Upper, set dataset.StringSet, scratch []byte) TimingResult {
	var sum uint64

	start := time.Now()
	for _, s := range set {
		dst := scratch[:len(s)]
		c.Fn(dst, s)
		for _, b := range dst {
			sum += uint64(b)
		}
	}
	elapsed := time.Since(start)

	return TimingResult{
		Candidate: c.Name,
		Ticks:     elapsed.Nanoseconds(),
		Elapsed:   elapsed,
		Checksum:  float64(sum),
	}
}

// =============================================================================
// WARM-UP
// =============================================================================

// warmSink keeps the warm-up loops observable so the compiler cannot
// discard them.
var warmSink float64

// clampProbe covers all three clamp regions plus both exact bounds.
func (r *Runner) clampProbe() [5]float64 {
	b := r.gen.Bounds()
	return [5]float64{b.Lo - 1, b.Lo, (b.Lo + b.Hi) / 2, b.Hi, b.Hi + 1}
}

const upperProbe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// warmUpClamps runs every candidate the configured number of rounds over
// the probe values, discarding results. Uniform across candidates so no
// one benefits from running later.
func (r *Runner) warmUpClamps(clamps []candidate.Clamp) {
	b := r.gen.Bounds()
	probe := r.clampProbe()
	for _, c := range clamps {
		for i := 0; i < r.warmupRounds; i++ {
			for _, x := range probe {
				warmSink += c.Fn(x, b.Lo, b.Hi)
			}
		}
	}
}

func (r *Runner) warmUpUppers(uppers []candidate.Upper) {
	src := []byte(upperProbe)
	dst := make([]byte, len(src))
	for _, c := range uppers {
		for i := 0; i < r.warmupRounds; i++ {
			c.Fn(dst, src)
		}
		warmSink += float64(dst[0])
	}
}
