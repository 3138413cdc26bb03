// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package harness times the candidates and checks that they agree.
//
// One run of a scenario: generate the dataset, warm every candidate up on
// a fixed probe input, then sweep each candidate over the same shared
// dataset inside a timed window that covers nothing but the transform
// calls and a running output checksum. The checksum cost is a systematic
// bias applied equally to all candidates and is deliberately not corrected
// for.
//
// Runs are strictly sequential and there are no suspension points inside a
// timed loop; cancellation is only honored between candidates.
package harness
