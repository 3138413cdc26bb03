// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for clampbench.
//
// All benchmark constants (dataset length, clamp bounds, scenario offsets,
// warm-up rounds, string sizes) carry build-time defaults and may be
// overridden by ~/.clampbench/config.toml. Values outside their valid
// range are clamped on load rather than rejected, so a bad edit degrades
// to the nearest sane setting instead of refusing to start.
//
// Configuration is read at startup and whenever the watcher reports a file
// change; a reload only ever affects the next run, never one in flight.
package config
