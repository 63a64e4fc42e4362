// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/jsonc"

	"github.com/1111philo/htc-app/lib/schema"
)

// Theme defines the color palette for the htc terminal UIs. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// The fields cover universal chrome (text, selection, borders) and the
// semantic categories that recur across the client's views: feedback
// banners, notification statuses, and queue statuses.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color `json:"normal_text"`
	FaintText  lipgloss.Color `json:"faint_text"`

	// Selected row.
	SelectedBackground lipgloss.Color `json:"selected_background"`
	SelectedForeground lipgloss.Color `json:"selected_foreground"`

	// Feedback banners shown after a create/submit attempt.
	FeedbackSuccess lipgloss.Color `json:"feedback_success"`
	FeedbackError   lipgloss.Color `json:"feedback_error"`

	// Notification statuses.
	NotificationActive   lipgloss.Color `json:"notification_active"`
	NotificationArchived lipgloss.Color `json:"notification_archived"`

	// Guest-service queue statuses.
	QueueQueued    lipgloss.Color `json:"queue_queued"`
	QueueSlotted   lipgloss.Color `json:"queue_slotted"`
	QueueCompleted lipgloss.Color `json:"queue_completed"`

	// UI chrome.
	HeaderForeground lipgloss.Color `json:"header_foreground"`
	BorderColor      lipgloss.Color `json:"border_color"`
	HelpText         lipgloss.Color `json:"help_text"`

	// Background tint for characters matched by the search query.
	MatchHighlightBackground lipgloss.Color `json:"match_highlight_background"`

	// Modal and dropdown surfaces.
	ModalForeground lipgloss.Color `json:"modal_foreground"`
	ModalBackground lipgloss.Color `json:"modal_background"`
}

// NotificationColor returns the color for a notification status.
// Unknown values render as FaintText.
func (theme Theme) NotificationColor(status schema.NotificationStatus) lipgloss.Color {
	switch status {
	case schema.NotificationActive:
		return theme.NotificationActive
	case schema.NotificationArchived:
		return theme.NotificationArchived
	default:
		return theme.FaintText
	}
}

// QueueColor returns the color for a guest-service queue status.
// Unknown values render as FaintText.
func (theme Theme) QueueColor(status schema.GuestServiceStatus) lipgloss.Color {
	switch status {
	case schema.GuestServiceQueued:
		return theme.QueueQueued
	case schema.GuestServiceSlotted:
		return theme.QueueSlotted
	case schema.GuestServiceCompleted:
		return theme.QueueCompleted
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	FeedbackSuccess: lipgloss.Color("114"), // green
	FeedbackError:   lipgloss.Color("196"), // bright red

	NotificationActive:   lipgloss.Color("220"), // yellow/amber
	NotificationArchived: lipgloss.Color("245"), // gray

	QueueQueued:    lipgloss.Color("220"), // yellow/amber
	QueueSlotted:   lipgloss.Color("75"),  // blue
	QueueCompleted: lipgloss.Color("114"), // green

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	MatchHighlightBackground: lipgloss.Color("58"), // dark amber

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("237"),
}

// LoadTheme returns DefaultTheme with any overrides from the theme
// file at path applied on top. The file is JSONC (JSON extended with
// // comments and trailing commas) and only needs to name the fields
// it changes. A missing file is not an error; a malformed one is.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return theme, nil
		}
		return theme, fmt.Errorf("reading theme %s: %w", path, err)
	}

	stripped := jsonc.ToJSON(data)
	if err := json.Unmarshal(stripped, &theme); err != nil {
		return theme, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	return theme, nil
}
