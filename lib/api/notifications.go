// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/1111philo/htc-app/lib/schema"
)

// AddGuestNotification creates a notification for a guest. Status is
// always "Active" on creation; the backend has no way to create an
// archived notification.
func (client *Client) AddGuestNotification(ctx context.Context, guestID int, message string) error {
	message = strings.TrimSpace(message)
	if length := len([]rune(message)); length < schema.NotificationMessageMinLength || length > schema.NotificationMessageMaxLength {
		return &Error{
			Kind: KindServer,
			Path: "/addGuestNotification",
			Err: fmt.Errorf("message length %d outside %d..%d",
				length, schema.NotificationMessageMinLength, schema.NotificationMessageMaxLength),
		}
	}

	body := map[string]any{
		"guest_id": guestID,
		"message":  message,
		"status":   schema.NotificationActive,
	}
	return client.postAuth(ctx, "/addGuestNotification", body, nil)
}

// ToggleGuestNotificationStatus flips a notification between Active
// and Archived. A 200 response with {success:false} is a server-side
// rejection and surfaces as a KindServer error.
func (client *Client) ToggleGuestNotificationStatus(ctx context.Context, notificationID int) error {
	body := map[string]any{"notification_id": notificationID}

	var envelope successEnvelope
	if err := client.postAuth(ctx, "/toggleGuestNotificationStatus", body, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return &Error{Kind: KindServer, Path: "/toggleGuestNotificationStatus", StatusCode: 200, Err: fmt.Errorf("backend reported success=false")}
	}
	return nil
}
