// clampbench TUI - A terminal harness comparing equivalent clamp and
// uppercase implementations.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/clampbench/internal/config"
	"github.com/jeranaias/clampbench/internal/ui/bench"
	"github.com/jeranaias/clampbench/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async messages from the config watcher
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func main() {
	// Load configuration at startup. A broken config file is reported but
	// never fatal; the defaults carry the run.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config load: %v (using defaults)\n", err)
	}

	// Initialize the theme
	theme := styles.NewTheme()

	// Initial terminal size; the program corrects it with the first
	// WindowSizeMsg, this only covers the frame before that arrives.
	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	m := bench.NewModel(cfg, theme, width, height)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Store program reference for async operations
	programMu.Lock()
	programRef = p
	programMu.Unlock()

	// Watch the config file and forward reloads into the program. The
	// reloaded config applies to the next run, never a running one.
	watcher, watchErr := config.NewWatcher(250*time.Millisecond, func(next *config.Config) {
		programMu.Lock()
		ref := programRef
		programMu.Unlock()
		if ref != nil {
			ref.Send(bench.ConfigReloadedMsg{Cfg: next})
		}
	})
	if watchErr == nil {
		if watchErr = watcher.Watch(); watchErr != nil {
			watcher.Close()
		}
	}
	if watchErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: config watcher disabled: %v\n", watchErr)
	} else {
		defer watcher.Close()
	}

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running clampbench: %v\n", err)
		os.Exit(1)
	}
}
