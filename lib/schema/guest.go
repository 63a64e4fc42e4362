// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"
)

// Guest is a person receiving services at the center. Guests are
// distinct from Users: a Guest has no credentials and never logs in.
type Guest struct {
	// GuestID is assigned by the backend on creation. Zero means the
	// guest has not been persisted yet.
	GuestID int `json:"guest_id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// DOB is the date of birth in YYYY-MM-DD form. The backend stores
	// and searches it as a string, so the client does not parse it.
	DOB string `json:"dob"`

	// Notifications is populated only by the guest-detail endpoint.
	// Search results and creation responses leave it empty.
	Notifications []GuestNotification `json:"guest_notifications,omitempty"`
}

// OptionLabel returns the selector label for this guest. The format is
// fixed: staff recognize guests by ID, name, and birthday together,
// since names alone are frequently ambiguous.
func (guest Guest) OptionLabel() string {
	return fmt.Sprintf("%d : %s %s : %s", guest.GuestID, guest.FirstName, guest.LastName, guest.DOB)
}

// FullName returns the guest's display name.
func (guest Guest) FullName() string {
	return strings.TrimSpace(guest.FirstName + " " + guest.LastName)
}

// TrimStrings removes leading and trailing whitespace from every string
// field. Called before submitting a guest record so that stray spaces
// from form input never reach the backend.
func (guest *Guest) TrimStrings() {
	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	guest.DOB = strings.TrimSpace(guest.DOB)
}

// ActiveNotifications returns the subset of the guest's notifications
// whose status is Active, preserving order.
func (guest Guest) ActiveNotifications() []GuestNotification {
	var active []GuestNotification
	for _, notification := range guest.Notifications {
		if notification.Status == NotificationActive {
			active = append(active, notification)
		}
	}
	return active
}
