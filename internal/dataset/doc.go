// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dataset generates the benchmark inputs and describes their
// distribution.
//
// A Scenario names a distribution policy. The random scenarios span well
// outside the clamp bounds so a single run exercises all three clamp
// regions; the constant scenarios (all-below, all-inside, all-above) exist
// to expose branch-predictor effects that mixed input hides.
//
// Datasets are generated once per scenario, shared unchanged by every
// candidate in that run, and fully superseded by the next run.
package dataset
