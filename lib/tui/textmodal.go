// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TextModal is a modal overlay for multi-line text input. It
// implements a simple text editor with cursor tracking, rendered as a
// centered overlay on top of the main view. The footer shows a live
// character counter against the modal's length bounds so the user can
// see when a message is submittable.
type TextModal struct {
	// Title is shown in the modal header (e.g. "New notification").
	Title string

	// MinLength and MaxLength bound the rune count of a submittable
	// value. Zero MaxLength means unbounded.
	MinLength int
	MaxLength int

	lines   [][]rune // Each line is a slice of runes.
	cursorY int      // Current line index.
	cursorX int      // Cursor position within the current line.
	theme   Theme
}

// NewTextModal creates a TextModal with the given title and length
// bounds. The text area starts empty and focused.
func NewTextModal(title string, minLength, maxLength int, theme Theme) TextModal {
	return TextModal{
		Title:     title,
		MinLength: minLength,
		MaxLength: maxLength,
		lines:     [][]rune{{}},
		theme:     theme,
	}
}

// Value returns the current text content.
func (modal TextModal) Value() string {
	var parts []string
	for _, line := range modal.lines {
		parts = append(parts, string(line))
	}
	return strings.Join(parts, "\n")
}

// RuneCount returns the number of runes in the current content,
// counting line breaks as one rune each.
func (modal TextModal) RuneCount() int {
	count := 0
	for index, line := range modal.lines {
		count += len(line)
		if index > 0 {
			count++
		}
	}
	return count
}

// Submittable reports whether the current content satisfies the
// modal's length bounds.
func (modal TextModal) Submittable() bool {
	count := modal.RuneCount()
	if count < modal.MinLength {
		return false
	}
	if modal.MaxLength > 0 && count > modal.MaxLength {
		return false
	}
	return true
}

// Update processes a key message for the modal's text editor.
func (modal *TextModal) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			modal.insertRune(character)
		}

	case tea.KeyEnter:
		// Split the current line at the cursor.
		line := modal.lines[modal.cursorY]
		before := make([]rune, modal.cursorX)
		copy(before, line[:modal.cursorX])
		after := make([]rune, len(line)-modal.cursorX)
		copy(after, line[modal.cursorX:])

		modal.lines[modal.cursorY] = before
		// Insert a new line after the current one.
		newLines := make([][]rune, len(modal.lines)+1)
		copy(newLines, modal.lines[:modal.cursorY+1])
		newLines[modal.cursorY+1] = after
		copy(newLines[modal.cursorY+2:], modal.lines[modal.cursorY+1:])
		modal.lines = newLines
		modal.cursorY++
		modal.cursorX = 0

	case tea.KeyBackspace:
		if modal.cursorX > 0 {
			line := modal.lines[modal.cursorY]
			modal.lines[modal.cursorY] = append(line[:modal.cursorX-1], line[modal.cursorX:]...)
			modal.cursorX--
		} else if modal.cursorY > 0 {
			// Merge with previous line.
			previousLine := modal.lines[modal.cursorY-1]
			currentLine := modal.lines[modal.cursorY]
			modal.cursorX = len(previousLine)
			modal.lines[modal.cursorY-1] = append(previousLine, currentLine...)
			modal.lines = append(modal.lines[:modal.cursorY], modal.lines[modal.cursorY+1:]...)
			modal.cursorY--
		}

	case tea.KeyDelete:
		line := modal.lines[modal.cursorY]
		if modal.cursorX < len(line) {
			modal.lines[modal.cursorY] = append(line[:modal.cursorX], line[modal.cursorX+1:]...)
		} else if modal.cursorY < len(modal.lines)-1 {
			// Merge with next line.
			nextLine := modal.lines[modal.cursorY+1]
			modal.lines[modal.cursorY] = append(line, nextLine...)
			modal.lines = append(modal.lines[:modal.cursorY+1], modal.lines[modal.cursorY+2:]...)
		}

	case tea.KeyLeft:
		if modal.cursorX > 0 {
			modal.cursorX--
		} else if modal.cursorY > 0 {
			modal.cursorY--
			modal.cursorX = len(modal.lines[modal.cursorY])
		}

	case tea.KeyRight:
		line := modal.lines[modal.cursorY]
		if modal.cursorX < len(line) {
			modal.cursorX++
		} else if modal.cursorY < len(modal.lines)-1 {
			modal.cursorY++
			modal.cursorX = 0
		}

	case tea.KeyUp:
		if modal.cursorY > 0 {
			modal.cursorY--
			if modal.cursorX > len(modal.lines[modal.cursorY]) {
				modal.cursorX = len(modal.lines[modal.cursorY])
			}
		}

	case tea.KeyDown:
		if modal.cursorY < len(modal.lines)-1 {
			modal.cursorY++
			if modal.cursorX > len(modal.lines[modal.cursorY]) {
				modal.cursorX = len(modal.lines[modal.cursorY])
			}
		}

	case tea.KeyHome, tea.KeyCtrlA:
		modal.cursorX = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		modal.cursorX = len(modal.lines[modal.cursorY])
	}
}

// insertRune inserts a single rune at the cursor position.
func (modal *TextModal) insertRune(character rune) {
	line := modal.lines[modal.cursorY]
	newLine := make([]rune, len(line)+1)
	copy(newLine, line[:modal.cursorX])
	newLine[modal.cursorX] = character
	copy(newLine[modal.cursorX+1:], line[modal.cursorX:])
	modal.lines[modal.cursorY] = newLine
	modal.cursorX++
}

// Modal chrome overhead: 2 columns border + 2 columns padding = 4
// columns horizontal; 2 lines border + 1 title + 1 footer = 4 lines
// vertical. The inner text area gets the remainder.
const (
	textModalChromeWidth  = 4
	textModalChromeHeight = 4
	// Minimum inner text area: 30 columns wide, 5 lines tall. Below
	// this the editor is too cramped to be useful.
	textModalMinInnerWidth  = 30
	textModalMinInnerHeight = 5
	// Margin between the modal edge and the screen edge, so the user
	// can see the underlying view isn't gone. 2 lines/columns on each
	// side when there's room; collapses to 0 on very small screens.
	textModalMargin = 2
)

// Render produces the modal overlay lines for splicing onto the view.
// Returns the rendered lines and the anchor position (top-left corner
// in screen coordinates).
func (modal TextModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	// Size the modal to fill the screen minus a margin, but never
	// smaller than the minimum inner area plus chrome. On very small
	// screens the margin shrinks to zero before the inner area does.
	modalWidth := screenWidth - textModalMargin*2
	modalHeight := screenHeight - textModalMargin*2

	minWidth := textModalMinInnerWidth + textModalChromeWidth
	minHeight := textModalMinInnerHeight + textModalChromeHeight
	if modalWidth < minWidth {
		modalWidth = minWidth
	}
	if modalHeight < minHeight {
		modalHeight = minHeight
	}
	// Clamp to screen bounds so the overlay doesn't extend past the
	// terminal edges even when the minimum exceeds the screen.
	if modalWidth > screenWidth {
		modalWidth = screenWidth
	}
	if modalHeight > screenHeight {
		modalHeight = screenHeight
	}

	innerWidth := modalWidth - textModalChromeWidth
	innerHeight := modalHeight - textModalChromeHeight

	bgStyle := lipgloss.NewStyle().
		Background(modal.theme.ModalBackground)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.ModalBackground)

	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)

	counterStyle := footerStyle
	if !modal.Submittable() {
		counterStyle = lipgloss.NewStyle().
			Foreground(modal.theme.FeedbackError).
			Background(modal.theme.ModalBackground)
	}

	cursorStyle := lipgloss.NewStyle().
		Reverse(true)

	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.ModalForeground).
		Background(modal.theme.ModalBackground)

	// Build title line.
	title := titleStyle.Render(modal.Title)
	titleWidth := ansi.StringWidth(title)
	if titleWidth < innerWidth {
		title += bgStyle.Render(strings.Repeat(" ", innerWidth-titleWidth))
	}

	// Build footer line: key help on the left, character counter on
	// the right.
	counter := fmt.Sprintf("%d", modal.RuneCount())
	if modal.MaxLength > 0 {
		counter = fmt.Sprintf("%d/%d", modal.RuneCount(), modal.MaxLength)
	}
	help := footerStyle.Render("Ctrl+D submit  Esc cancel")
	counterRendered := counterStyle.Render(counter)
	footerGap := innerWidth - ansi.StringWidth(help) - ansi.StringWidth(counterRendered)
	if footerGap < 1 {
		footerGap = 1
	}
	footer := help + bgStyle.Render(strings.Repeat(" ", footerGap)) + counterRendered

	// Build text area lines with cursor.
	var textLines []string
	// Scroll the view if the cursor is past the visible area.
	scrollOffset := 0
	if modal.cursorY >= innerHeight {
		scrollOffset = modal.cursorY - innerHeight + 1
	}

	for lineIndex := scrollOffset; lineIndex < scrollOffset+innerHeight; lineIndex++ {
		var renderedLine string
		if lineIndex < len(modal.lines) {
			line := modal.lines[lineIndex]
			if lineIndex == modal.cursorY {
				// Render with cursor.
				if modal.cursorX >= len(line) {
					renderedLine = textStyle.Render(string(line)) + cursorStyle.Render(" ")
				} else {
					before := textStyle.Render(string(line[:modal.cursorX]))
					atCursor := cursorStyle.Render(string(line[modal.cursorX : modal.cursorX+1]))
					after := textStyle.Render(string(line[modal.cursorX+1:]))
					renderedLine = before + atCursor + after
				}
			} else {
				renderedLine = textStyle.Render(string(line))
			}
		}

		// Pad to inner width.
		lineWidth := ansi.StringWidth(renderedLine)
		if lineWidth < innerWidth {
			renderedLine += bgStyle.Render(strings.Repeat(" ", innerWidth-lineWidth))
		}
		textLines = append(textLines, renderedLine)
	}

	// Assemble the modal content inside a border.
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground)

	inner := title + "\n" + strings.Join(textLines, "\n") + "\n" + footer
	rendered := borderStyle.Render(inner)

	// Split into lines and compute anchor for centering.
	resultLines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}

	return resultLines, anchorX, anchorY
}
