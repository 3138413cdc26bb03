// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dataset generates the benchmark inputs.
package dataset

import (
	"fmt"
	"math/rand"
)

// =============================================================================
// SCENARIOS
// =============================================================================

// Kind selects the generation rule for a scenario.
type Kind int

const (
	// RandomUniform draws uniformly from a range spanning both sides of
	// the clamp bounds.
	RandomUniform Kind = iota
	// AllBelow is a constant dataset strictly below the lower bound.
	AllBelow
	// AllInside is a constant dataset strictly between the bounds.
	AllInside
	// AllAbove is a constant dataset strictly above the upper bound.
	AllAbove
)

// Scenario is a named distribution policy.
type Scenario struct {
	Label string
	Kind  Kind
}

// clampScenarios is the fixed scenario order for the clamp suite.
var clampScenarios = []Scenario{
	{Label: "random uniform", Kind: RandomUniform},
	{Label: "all below", Kind: AllBelow},
	{Label: "all inside", Kind: AllInside},
	{Label: "all above", Kind: AllAbove},
}

// ClampScenarios returns the clamp suite scenarios in run order.
// Callers must not modify the returned slice.
func ClampScenarios() []Scenario {
	return clampScenarios
}

// =============================================================================
// GENERATOR
// =============================================================================

// Bounds holds the clamp interval. Both values are float64 so candidates
// never mix integer and float comparison semantics.
type Bounds struct {
	Lo float64
	Hi float64
}

// MaxLen caps a single dataset. Requests beyond it fail cleanly instead
// of thrashing the allocator mid-run.
const MaxLen = 16 << 20

// Dataset is an ordered, fixed-length input sequence. Immutable after
// generation by convention; the harness only ever reads it.
type Dataset []float64

// Generator builds datasets for one configuration of bounds and offsets.
// Not safe for concurrent use; runs are strictly sequential anyway.
type Generator struct {
	bounds      Bounds
	spread      float64 // how far the uniform range extends past each bound
	belowOffset float64 // distance below Lo for the all-below constant
	aboveOffset float64 // distance above Hi for the all-above constant
	rng         *rand.Rand
}

// NewGenerator creates a generator seeded from seed. Fixed seeds make runs
// reproducible; the UI seeds from the wall clock.
func NewGenerator(bounds Bounds, spread, belowOffset, aboveOffset float64, seed int64) *Generator {
	return &Generator{
		bounds:      bounds,
		spread:      spread,
		belowOffset: belowOffset,
		aboveOffset: aboveOffset,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Bounds returns the clamp interval this generator targets.
func (g *Generator) Bounds() Bounds {
	return g.bounds
}

// Generate builds a dataset of exactly length entries under the scenario's
// distribution rule. length 0 is valid and produces an empty dataset; a
// negative or oversized length aborts the run with an error and no partial
// dataset.
func (g *Generator) Generate(scn Scenario, length int) (Dataset, error) {
	if length < 0 {
		return nil, fmt.Errorf("dataset length %d is negative", length)
	}
	if length > MaxLen {
		return nil, fmt.Errorf("dataset length %d exceeds maximum %d", length, MaxLen)
	}

	ds := make(Dataset, length)
	switch scn.Kind {
	case RandomUniform:
		lo := g.bounds.Lo - g.spread
		width := (g.bounds.Hi + g.spread) - lo
		for i := range ds {
			ds[i] = lo + g.rng.Float64()*width
		}
	case AllBelow:
		fill(ds, g.bounds.Lo-g.belowOffset)
	case AllInside:
		fill(ds, g.bounds.Lo+(g.bounds.Hi-g.bounds.Lo)/2)
	case AllAbove:
		fill(ds, g.bounds.Hi+g.aboveOffset)
	default:
		return nil, fmt.Errorf("unknown scenario kind %d", scn.Kind)
	}

	return ds, nil
}

func fill(ds Dataset, v float64) {
	for i := range ds {
		ds[i] = v
	}
}

// =============================================================================
// DISTRIBUTION STATS
// =============================================================================

// Stats counts how a dataset falls against the bounds. Computed post hoc
// for reporting; never consulted during a timed sweep.
type Stats struct {
	Below  int
	Inside int
	Above  int
}

// Measure classifies every entry of ds against b.
func Measure(ds Dataset, b Bounds) Stats {
	var s Stats
	for _, x := range ds {
		switch {
		case x < b.Lo:
			s.Below++
		case x > b.Hi:
			s.Above++
		default:
			s.Inside++
		}
	}
	return s
}

// Total returns the number of classified entries.
func (s Stats) Total() int {
	return s.Below + s.Inside + s.Above
}

// PercentBelow returns the below share in percent, 0 for an empty dataset.
func (s Stats) PercentBelow() float64 { return s.percent(s.Below) }

// PercentInside returns the inside share in percent, 0 for an empty dataset.
func (s Stats) PercentInside() float64 { return s.percent(s.Inside) }

// PercentAbove returns the above share in percent, 0 for an empty dataset.
func (s Stats) PercentAbove() float64 { return s.percent(s.Above) }

func (s Stats) percent(n int) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
