// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for clampbench.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete clampbench configuration.
type Config struct {
	// Bench settings for the clamp suite
	Bench BenchConfig `toml:"bench"`

	// Strings settings for the uppercase suite
	Strings StringConfig `toml:"strings"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// BenchConfig contains the clamp suite constants.
type BenchConfig struct {
	// DatasetLen is the number of values per scenario dataset.
	DatasetLen int `toml:"dataset_len"`
	// LowerBound and UpperBound define the clamp interval.
	LowerBound float64 `toml:"lower_bound"`
	UpperBound float64 `toml:"upper_bound"`
	// BelowOffset is how far below LowerBound the all-below constant sits.
	BelowOffset float64 `toml:"below_offset"`
	// AboveOffset is how far above UpperBound the all-above constant sits.
	AboveOffset float64 `toml:"above_offset"`
	// RandomSpread extends the uniform range past each bound so random
	// datasets hit all three clamp regions.
	RandomSpread float64 `toml:"random_spread"`
	// WarmupRounds is how many times each candidate runs over the probe
	// input before any measured sweep. Applied uniformly to every
	// candidate in both suites.
	WarmupRounds int `toml:"warmup_rounds"`
}

// StringConfig contains the uppercase suite constants.
type StringConfig struct {
	// Count is the number of strings per scenario.
	Count int `toml:"count"`
	// Length is the byte length of each string.
	Length int `toml:"length"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// CompactMode drops the per-candidate checksum column on narrow
	// terminals.
	CompactMode bool `toml:"compact_mode"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Valid ranges enforced on load.
const (
	MinDatasetLen = 0
	MaxDatasetLen = 10_000_000
	MinWarmup     = 0
	MaxWarmup     = 100_000
	MaxStrings    = 100_000
	MaxStringLen  = 1 << 16
)

// Default returns a Config with the build-time constants.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			DatasetLen:   100_000,
			LowerBound:   -100,
			UpperBound:   200,
			BelowOffset:  1,
			AboveOffset:  50,
			RandomSpread: 150,
			WarmupRounds: 1000,
		},
		Strings: StringConfig{
			Count:  1000,
			Length: 2048,
		},
		UI: UIConfig{
			CompactMode: false,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the clampbench configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".clampbench"), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load returns the defaults overlaid with ~/.clampbench/config.toml when
// the file exists. A load failure is reported but never fatal: the
// returned config is always usable (defaults plus whatever decoded), with
// out-of-range values clamped.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		cfg.clampToValid()
		return cfg, nil
	}

	if _, statErr := os.Stat(path); statErr != nil {
		cfg.clampToValid()
		return cfg, nil
	}

	loadErr := LoadTOML(cfg, path)
	cfg.clampToValid()
	return cfg, loadErr
}

// LoadFromPath loads the defaults overlaid with an explicit file.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.clampToValid()
	return cfg, nil
}

// LoadTOML decodes path over cfg in place.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// Save writes cfg to the default config path, creating the directory if
// needed.
func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// clampToValid forces every field into its valid range. Bounds that ended
// up inverted are swapped; zero-or-negative offsets fall back to defaults
// so the adversarial scenarios stay strictly outside the bounds.
func (c *Config) clampToValid() {
	def := Default()

	c.Bench.DatasetLen = clampInt(c.Bench.DatasetLen, MinDatasetLen, MaxDatasetLen)
	c.Bench.WarmupRounds = clampInt(c.Bench.WarmupRounds, MinWarmup, MaxWarmup)

	if c.Bench.LowerBound > c.Bench.UpperBound {
		c.Bench.LowerBound, c.Bench.UpperBound = c.Bench.UpperBound, c.Bench.LowerBound
	}
	if c.Bench.BelowOffset <= 0 {
		c.Bench.BelowOffset = def.Bench.BelowOffset
	}
	if c.Bench.AboveOffset <= 0 {
		c.Bench.AboveOffset = def.Bench.AboveOffset
	}
	if c.Bench.RandomSpread <= 0 {
		c.Bench.RandomSpread = def.Bench.RandomSpread
	}

	c.Strings.Count = clampInt(c.Strings.Count, 0, MaxStrings)
	c.Strings.Length = clampInt(c.Strings.Length, 0, MaxStringLen)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
