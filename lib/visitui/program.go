// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package visitui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Run builds the model from config and runs the bubbletea program
// until the user quits. The theme assumes a 256-color palette, so the
// color profile is pinned rather than auto-detected; otherwise a
// conservative TERM setting silently drops the status colors.
func Run(config Config) error {
	lipgloss.SetColorProfile(termenv.ANSI256)

	program := tea.NewProgram(NewModel(config), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running visit TUI: %w", err)
	}
	return nil
}
