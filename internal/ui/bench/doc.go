// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bench provides the Bubble Tea model driving the benchmark UI.
//
// The model owns the run loop: a key press triggers a suite, the suite
// executes inside a single tea command, and its reports land back in the
// model as one message. Runs are strictly sequential; triggers arriving
// while a run is active are ignored rather than queued.
package bench
