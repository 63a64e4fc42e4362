// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package visitui implements the visit-creation TUI: a bubbletea model
// that walks staff through finding or creating a guest, picking the
// requested services, reviewing the guest's active notifications, and
// logging the visit.
//
// The workflow is a small state machine. With no guest selected the
// submit action is disabled; selecting a guest (via debounced search
// or the new-guest modal) fetches that guest's active notifications;
// submit becomes enabled once at least one service is also selected.
// A successful submit resets the whole form back to its defaults; a
// failed submit preserves every selection so the user can retry.
//
// All network calls run as tea.Cmd goroutines and come back as
// messages. The two fetches that race with user input (guest search
// and the notification fetch) carry a monotonically increasing
// generation number, and responses for stale generations are dropped
// on arrival.
package visitui
