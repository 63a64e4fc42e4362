// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package visitui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/1111philo/htc-app/lib/schema"
	"github.com/1111philo/htc-app/lib/tui"
)

// guestModal is the inline new-guest form: first name, last name, and
// date of birth. Enter advances through the fields and submits from
// the last one; escape cancels, with a discard confirmation when any
// field holds text.
type guestModal struct {
	fields      [3]textinput.Model
	fieldCursor int
	theme       tui.Theme
}

const (
	guestFieldFirstName = 0
	guestFieldLastName  = 1
	guestFieldDOB       = 2
)

var guestFieldLabels = [3]string{"First name", "Last name", "Birthday"}

func newGuestModal(theme tui.Theme) *guestModal {
	modal := &guestModal{theme: theme}
	for index := range modal.fields {
		field := textinput.New()
		field.Prompt = ""
		modal.fields[index] = field
	}
	modal.fields[guestFieldDOB].Placeholder = "YYYY-MM-DD"
	modal.fields[guestFieldFirstName].Focus()
	return modal
}

// Update routes a keystroke to the focused field.
func (modal *guestModal) Update(message tea.KeyMsg) {
	var cmd tea.Cmd
	modal.fields[modal.fieldCursor], cmd = modal.fields[modal.fieldCursor].Update(message)
	_ = cmd // Cursor blink is not worth threading through the parent.
}

// NextField advances focus to the next field, wrapping to the first.
func (modal *guestModal) NextField() {
	modal.fields[modal.fieldCursor].Blur()
	modal.fieldCursor = (modal.fieldCursor + 1) % len(modal.fields)
	modal.fields[modal.fieldCursor].Focus()
}

// OnLastField reports whether focus is on the final field, where
// enter submits instead of advancing.
func (modal *guestModal) OnLastField() bool {
	return modal.fieldCursor == len(modal.fields)-1
}

// Dirty reports whether any field holds text, which makes closing the
// modal a destructive action needing confirmation.
func (modal *guestModal) Dirty() bool {
	for index := range modal.fields {
		if strings.TrimSpace(modal.fields[index].Value()) != "" {
			return true
		}
	}
	return false
}

// Guest assembles the form contents into a guest record. The caller
// trims before submission.
func (modal *guestModal) Guest() schema.Guest {
	return schema.Guest{
		FirstName: modal.fields[guestFieldFirstName].Value(),
		LastName:  modal.fields[guestFieldLastName].Value(),
		DOB:       modal.fields[guestFieldDOB].Value(),
	}
}

// Render produces the modal overlay lines and its centered anchor.
func (modal *guestModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	labelStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)
	activeLabelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.ModalBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.ModalBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)
	bgStyle := lipgloss.NewStyle().
		Background(modal.theme.ModalBackground)

	const innerWidth = 44

	pad := func(line string) string {
		width := ansi.StringWidth(line)
		if width < innerWidth {
			line += bgStyle.Render(strings.Repeat(" ", innerWidth-width))
		}
		return line
	}

	lines := []string{pad(titleStyle.Render("New guest"))}
	for index := range modal.fields {
		label := guestFieldLabels[index]
		style := labelStyle
		if index == modal.fieldCursor {
			style = activeLabelStyle
		}
		lines = append(lines, pad(style.Render(label+": ")+modal.fields[index].View()))
	}
	lines = append(lines, pad(footerStyle.Render("Enter next/submit  Esc cancel")))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
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
