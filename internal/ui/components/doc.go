// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the clampbench
// TUI: the header, the status bar, and the report view that renders run
// results as fixed-width comparison tables.
package components
