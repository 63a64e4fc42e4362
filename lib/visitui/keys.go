// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package visitui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the visit-creation TUI.
type KeyMap struct {
	// Navigation within the focused pane (dropdown options, service
	// checklist, notification rows).
	Up   key.Binding
	Down key.Binding

	// Focus cycling between the search, services, and notifications
	// panes.
	FocusNext key.Binding

	// Select confirms the highlighted dropdown option.
	Select key.Binding

	// ToggleEntry flips the service checklist entry under the cursor.
	ToggleEntry key.Binding

	// Submit logs the visit. Only honored when a guest and at least
	// one service are selected.
	Submit key.Binding

	// NewGuest opens the new-guest modal.
	NewGuest key.Binding

	// AddNotification opens the notification text modal for the
	// selected guest.
	AddNotification key.Binding

	// ToggleStatus flips the status of the notification under the
	// cursor between Active and Archived.
	ToggleStatus key.Binding

	// Cancel dismisses the active dropdown or modal.
	Cancel key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next pane"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	ToggleEntry: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("Space", "toggle"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "log visit"),
	),
	NewGuest: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "new guest"),
	),
	AddNotification: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "add notification"),
	),
	ToggleStatus: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle status"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
