// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label string // Display text shown in the dropdown.
	ID    int    // Backend identifier of the option (guest or service ID).
}

// DropdownOverlay renders a floating single-select menu anchored at a
// screen position. It captures all keyboard input when active (up/down
// to navigate, enter to select, escape to dismiss). The owning model
// routes input to it when focus is set.
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int // Screen X coordinate of the dropdown's top-left corner.
	AnchorY int // Screen Y coordinate of the dropdown's top-left corner.
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the currently highlighted option.
func (dropdown *DropdownOverlay) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// Width returns the total visible width of the rendered dropdown in
// columns. This matches the width used by Render.
func (dropdown *DropdownOverlay) Width() int {
	maxLabelWidth := 0
	for _, option := range dropdown.Options {
		labelWidth := ansi.StringWidth(option.Label)
		if labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > LABEL  ": 3 chars prefix (space + marker + space),
	// then label, then 1 char padding on each side.
	return 3 + maxLabelWidth + 2
}

// Render produces the dropdown lines for overlay splicing. Each line
// has the same visible width (including left/right padding) and a
// solid background for visual separation from the underlying content.
// The currently highlighted option uses a contrasting background.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	totalWidth := dropdown.Width()
	// Inner width is total minus 1 char padding on each side.
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.ModalBackground)
	selectedBackground := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, option := range dropdown.Options {
		marker := " "
		style := backgroundStyle
		if index == dropdown.Cursor {
			marker = ">"
			style = selectedBackground
		}
		content := style.Render(marker + " " + option.Label)
		lines = append(lines, PadOverlayLine(content, innerWidth, style))
	}

	return lines
}

// MultiSelect is a keyboard-driven checklist. Unlike DropdownOverlay
// it renders inline (not floating) and tracks a set of checked
// options: space toggles, up/down navigate. The visit form uses it for
// the service picker.
type MultiSelect struct {
	Options []DropdownOption
	Cursor  int
	checked map[int]bool
}

// NewMultiSelect creates a MultiSelect over the given options with
// nothing checked.
func NewMultiSelect(options []DropdownOption) *MultiSelect {
	return &MultiSelect{
		Options: options,
		checked: make(map[int]bool),
	}
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (multi *MultiSelect) MoveUp() {
	multi.Cursor--
	if multi.Cursor < 0 {
		multi.Cursor = len(multi.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (multi *MultiSelect) MoveDown() {
	multi.Cursor++
	if multi.Cursor >= len(multi.Options) {
		multi.Cursor = 0
	}
}

// Toggle flips the checked state of the option under the cursor.
func (multi *MultiSelect) Toggle() {
	if len(multi.Options) == 0 {
		return
	}
	id := multi.Options[multi.Cursor].ID
	multi.checked[id] = !multi.checked[id]
}

// Check marks the option with the given ID as selected. Used to
// preselect the default service before the user touches the form.
func (multi *MultiSelect) Check(id int) {
	multi.checked[id] = true
}

// Checked reports whether the option with the given ID is selected.
func (multi *MultiSelect) Checked(id int) bool {
	return multi.checked[id]
}

// SelectedIDs returns the checked option IDs in option order.
func (multi *MultiSelect) SelectedIDs() []int {
	var ids []int
	for _, option := range multi.Options {
		if multi.checked[option.ID] {
			ids = append(ids, option.ID)
		}
	}
	return ids
}

// Clear unchecks every option.
func (multi *MultiSelect) Clear() {
	multi.checked = make(map[int]bool)
}

// View renders the checklist, one option per line.
func (multi *MultiSelect) View(theme Theme) string {
	normalStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, option := range multi.Options {
		box := "[ ]"
		if multi.checked[option.ID] {
			box = "[x]"
		}
		line := box + " " + option.Label
		if index == multi.Cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = normalStyle.Render("  " + line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
