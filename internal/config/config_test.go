// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for clampbench.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 100_000, cfg.Bench.DatasetLen)
	assert.Equal(t, -100.0, cfg.Bench.LowerBound)
	assert.Equal(t, 200.0, cfg.Bench.UpperBound)
	assert.Equal(t, 1000, cfg.Bench.WarmupRounds)
	assert.Equal(t, 1000, cfg.Strings.Count)
	assert.Equal(t, 2048, cfg.Strings.Length)

	// Defaults must survive their own validation unchanged.
	before := *cfg
	cfg.clampToValid()
	assert.Equal(t, before, *cfg)
}

func TestLoadFromPath_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[bench]
dataset_len = 5000
lower_bound = -10.0
upper_bound = 10.0
warmup_rounds = 50

[strings]
count = 16
length = 64

[ui]
compact_mode = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Bench.DatasetLen)
	assert.Equal(t, -10.0, cfg.Bench.LowerBound)
	assert.Equal(t, 10.0, cfg.Bench.UpperBound)
	assert.Equal(t, 50, cfg.Bench.WarmupRounds)
	assert.Equal(t, 16, cfg.Strings.Count)
	assert.Equal(t, 64, cfg.Strings.Length)
	assert.True(t, cfg.UI.CompactMode)

	// Unset fields keep their defaults.
	assert.Equal(t, Default().Bench.BelowOffset, cfg.Bench.BelowOffset)
}

func TestLoadFromPath_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestClampToValid_OutOfRange(t *testing.T) {
	cfg := Default()
	cfg.Bench.DatasetLen = MaxDatasetLen + 1
	cfg.Bench.WarmupRounds = -5
	cfg.Strings.Count = -1
	cfg.Strings.Length = MaxStringLen * 2

	cfg.clampToValid()

	assert.Equal(t, MaxDatasetLen, cfg.Bench.DatasetLen)
	assert.Equal(t, MinWarmup, cfg.Bench.WarmupRounds)
	assert.Equal(t, 0, cfg.Strings.Count)
	assert.Equal(t, MaxStringLen, cfg.Strings.Length)
}

func TestClampToValid_InvertedBounds(t *testing.T) {
	cfg := Default()
	cfg.Bench.LowerBound = 300
	cfg.Bench.UpperBound = -50

	cfg.clampToValid()

	assert.Equal(t, -50.0, cfg.Bench.LowerBound)
	assert.Equal(t, 300.0, cfg.Bench.UpperBound)
}

func TestClampToValid_NonPositiveOffsets(t *testing.T) {
	cfg := Default()
	cfg.Bench.BelowOffset = 0
	cfg.Bench.AboveOffset = -3
	cfg.Bench.RandomSpread = 0

	cfg.clampToValid()

	def := Default()
	assert.Equal(t, def.Bench.BelowOffset, cfg.Bench.BelowOffset)
	assert.Equal(t, def.Bench.AboveOffset, cfg.Bench.AboveOffset)
	assert.Equal(t, def.Bench.RandomSpread, cfg.Bench.RandomSpread)
}
