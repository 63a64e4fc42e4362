// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package visitui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/1111philo/htc-app/lib/schema"
	"github.com/1111philo/htc-app/lib/tui"
)

// searchRowY is the screen row of the search input; the option
// dropdown anchors directly below it.
const searchRowY = 2

// dropdownLabelOffset is the visible column where a dropdown row's
// label starts: left padding, cursor marker, and one more space.
const dropdownLabelOffset = 3

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	normalStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	var lines []string
	lines = append(lines, headerStyle.Render(" Log Visit"))
	lines = append(lines, "")

	// Search row.
	searchMarker := "  "
	if model.focus == FocusSearch {
		searchMarker = "> "
	}
	lines = append(lines, searchMarker+model.searchInput.View())
	lines = append(lines, "")

	// Selected guest.
	if model.selectedGuest != nil {
		lines = append(lines, faintStyle.Render("  Guest: ")+
			normalStyle.Render(model.selectedGuest.OptionLabel()))
	} else {
		lines = append(lines, faintStyle.Render("  No guest selected"))
	}
	lines = append(lines, "")

	// Service checklist.
	servicesHeader := "  Services"
	if model.focus == FocusServices {
		servicesHeader = "> Services"
	}
	lines = append(lines, headerStyle.Render(servicesHeader))
	if len(model.catalog) == 0 {
		lines = append(lines, faintStyle.Render("  (no services available)"))
	} else {
		lines = append(lines, model.services.View(model.theme))
	}
	lines = append(lines, "")

	// Notifications pane.
	lines = append(lines, model.notificationLines()...)

	// Feedback banner.
	if model.feedback.Text != "" {
		style := lipgloss.NewStyle().Foreground(model.theme.FeedbackSuccess)
		if model.feedback.IsError {
			style = lipgloss.NewStyle().Foreground(model.theme.FeedbackError)
		}
		lines = append(lines, "")
		lines = append(lines, " "+style.Render(model.feedback.Text))
	}

	// Status and help.
	lines = append(lines, "")
	if model.submitting {
		lines = append(lines, faintStyle.Render(" Submitting..."))
	} else if model.SubmitEnabled() {
		lines = append(lines, normalStyle.Render(" C-s log visit"))
	} else {
		lines = append(lines, faintStyle.Render(" Select a guest and at least one service"))
	}
	lines = append(lines, helpStyle.Render(
		" Tab next pane  C-g new guest  C-t add notification  Esc dismiss  C-c quit"))

	view := strings.Join(lines, "\n")

	// Overlays, innermost last.
	if len(model.options) > 0 && model.focus == FocusSearch {
		dropdown := tui.DropdownOverlay{
			Options: model.guestOptions(),
			Cursor:  model.optionCursor,
			AnchorX: 2,
			AnchorY: searchRowY + 1,
		}
		rows := dropdown.Render(model.theme)
		for index := range rows {
			if index >= len(model.optionMatches) {
				break
			}
			rows[index] = tui.HighlightColumns(rows[index],
				shiftColumns(model.optionMatches[index], dropdownLabelOffset), model.theme)
		}
		view = tui.SpliceOverlay(view, rows, dropdown.AnchorX, dropdown.AnchorY)
	}
	if model.guestModal != nil {
		overlay, anchorX, anchorY := model.guestModal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, overlay, anchorX, anchorY)
	}
	if model.noteModal != nil {
		overlay, anchorX, anchorY := model.noteModal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, overlay, anchorX, anchorY)
	}
	if model.focus == FocusConfirmDiscard {
		overlay, anchorX, anchorY := model.renderConfirmDiscard()
		view = tui.SpliceOverlay(view, overlay, anchorX, anchorY)
	}
	return view
}

// guestOptions converts the search results into dropdown entries.
func (model Model) guestOptions() []tui.DropdownOption {
	options := make([]tui.DropdownOption, len(model.options))
	for index, guest := range model.options {
		options[index] = tui.DropdownOption{
			Label: guest.OptionLabel(),
			ID:    guest.GuestID,
		}
	}
	return options
}

// notificationLines renders the notification pane: header plus one row
// per active notification with its timestamp, message, and status.
func (model Model) notificationLines() []string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	normalStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Background(model.theme.SelectedBackground).
		Foreground(model.theme.SelectedForeground)

	header := "  Notifications"
	if model.focus == FocusNotifications {
		header = "> Notifications"
	}
	lines := []string{headerStyle.Render(header)}

	if model.selectedGuest == nil {
		lines = append(lines, faintStyle.Render("  (select a guest)"))
		return lines
	}
	if len(model.notifications) == 0 {
		lines = append(lines, faintStyle.Render("  (none)"))
		return lines
	}

	for index, notification := range model.notifications {
		statusStyle := lipgloss.NewStyle().
			Foreground(model.theme.NotificationColor(notification.Status))
		row := schema.ReadableDateTime(notification.CreatedAt) + "  " +
			singleLine(notification.Message)
		rendered := normalStyle.Render("  "+row) +
			"  " + statusStyle.Render("["+string(notification.Status)+"]")
		if model.focus == FocusNotifications && index == model.notificationCursor {
			rendered = selectedStyle.Render("> "+row) +
				"  " + statusStyle.Render("["+string(notification.Status)+"]")
		}
		lines = append(lines, rendered)
	}
	return lines
}

// singleLine collapses a multi-line message for row display.
func singleLine(message string) string {
	return strings.Join(strings.Fields(message), " ")
}

// shiftColumns maps label positions to dropdown screen columns.
func shiftColumns(columns []int, offset int) []int {
	if len(columns) == 0 {
		return nil
	}
	shifted := make([]int, len(columns))
	for index, column := range columns {
		shifted[index] = column + offset
	}
	return shifted
}

// renderConfirmDiscard builds the small y/n confirmation box shown
// over a modal with unsaved input.
func (model Model) renderConfirmDiscard() ([]string, int, int) {
	textStyle := lipgloss.NewStyle().
		Foreground(model.theme.ModalForeground).
		Background(model.theme.ModalBackground)
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.FeedbackError).
		Background(model.theme.ModalBackground)

	rendered := borderStyle.Render(textStyle.Render(" Discard unsaved input? (y/n) "))
	lines := strings.Split(rendered, "\n")
	width := 0
	if len(lines) > 0 {
		width = ansi.StringWidth(lines[0])
	}
	anchorX := (model.width - width) / 2
	anchorY := (model.height - len(lines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return lines, anchorX, anchorY
}
