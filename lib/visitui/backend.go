// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package visitui

import (
	"context"

	"github.com/1111philo/htc-app/lib/api"
	"github.com/1111philo/htc-app/lib/schema"
)

// Backend is the slice of the API client the visit workflow uses.
// Tests substitute a fake; production passes *api.Client.
type Backend interface {
	SearchGuests(ctx context.Context, query string) ([]schema.Guest, error)
	AddGuest(ctx context.Context, guest schema.Guest) (int, error)
	GetGuest(ctx context.Context, guestID int) (*schema.Guest, error)
	AddVisit(ctx context.Context, visit schema.Visit) (int, error)
	AddGuestNotification(ctx context.Context, guestID int, message string) error
	ToggleGuestNotificationStatus(ctx context.Context, notificationID int) error
}

var _ Backend = (*api.Client)(nil)
