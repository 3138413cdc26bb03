// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dataset generates the benchmark inputs.
package dataset

import "fmt"

// =============================================================================
// STRING SUITE INPUTS
// =============================================================================

// StringKind selects the letter-case distribution for the string suite.
type StringKind int

const (
	// MixedCase picks upper or lower case per byte with a coin flip.
	MixedCase StringKind = iota
	// AllLower makes every byte take the uppercase transform.
	AllLower
	// AllUpper makes no byte take the transform.
	AllUpper
)

// StringScenario is a named case-distribution policy for the string suite.
type StringScenario struct {
	Label string
	Kind  StringKind
}

var upperScenarios = []StringScenario{
	{Label: "mixed case", Kind: MixedCase},
	{Label: "all lower", Kind: AllLower},
	{Label: "all upper", Kind: AllUpper},
}

// UpperScenarios returns the string suite scenarios in run order.
// Callers must not modify the returned slice.
func UpperScenarios() []StringScenario {
	return upperScenarios
}

// StringSet is an ordered collection of equal-length ASCII letter blocks.
// Immutable after generation; uppercase candidates read it and write into
// their own scratch buffer.
type StringSet [][]byte

// GenerateStrings builds count blocks of strLen random ASCII letters under
// the scenario's case rule. count 0 is valid; negative sizes or a total
// byte volume beyond MaxLen abort with an error.
func (g *Generator) GenerateStrings(scn StringScenario, count, strLen int) (StringSet, error) {
	if count < 0 || strLen < 0 {
		return nil, fmt.Errorf("string set %dx%d has a negative dimension", count, strLen)
	}
	// Zero-length strings still cost a slice header each; cap the count
	// even when the byte volume divides out to nothing.
	maxCount := MaxLen
	if strLen > 0 {
		maxCount = MaxLen / strLen
	}
	if count > maxCount {
		return nil, fmt.Errorf("string set %dx%d exceeds maximum %d bytes", count, strLen, MaxLen)
	}

	set := make(StringSet, count)
	for i := range set {
		s := make([]byte, strLen)
		for j := range s {
			s[j] = g.letter(scn.Kind)
		}
		set[i] = s
	}
	return set, nil
}

func (g *Generator) letter(kind StringKind) byte {
	switch kind {
	case AllLower:
		return byte('a' + g.rng.Intn(26))
	case AllUpper:
		return byte('A' + g.rng.Intn(26))
	default:
		if g.rng.Intn(2) == 0 {
			return byte('A' + g.rng.Intn(26))
		}
		return byte('a' + g.rng.Intn(26))
	}
}
