// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "time"

// NotificationStatus is the lifecycle state of a guest notification.
// The backend exposes no generic update endpoint; status only changes
// through the dedicated toggle operation.
type NotificationStatus string

const (
	// NotificationActive is shown to staff whenever the guest is
	// selected. New notifications are always created Active.
	NotificationActive NotificationStatus = "Active"
	// NotificationArchived is hidden from the default view.
	NotificationArchived NotificationStatus = "Archived"
)

// Toggled returns the opposite status.
func (status NotificationStatus) Toggled() NotificationStatus {
	if status == NotificationActive {
		return NotificationArchived
	}
	return NotificationActive
}

// Message length bounds enforced client-side before submission. The
// backend enforces the same bounds; validating locally gives the user
// feedback without a round trip.
const (
	NotificationMessageMinLength = 5
	NotificationMessageMaxLength = 500
)

// GuestNotification is a message attached to a guest, shown to staff
// when the guest checks in.
type GuestNotification struct {
	NotificationID int                `json:"notification_id"`
	GuestID        int                `json:"guest_id"`
	Message        string             `json:"message"`
	Status         NotificationStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}

// ReadableDateTime formats a timestamp the way notification rows
// display it: local date and time without seconds.
func ReadableDateTime(timestamp time.Time) string {
	return timestamp.Local().Format("2006-01-02 15:04")
}
