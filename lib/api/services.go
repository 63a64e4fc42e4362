// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/1111philo/htc-app/lib/schema"
)

// GetServices fetches the full service catalog.
func (client *Client) GetServices(ctx context.Context) ([]schema.ServiceType, error) {
	var result struct {
		Rows []schema.ServiceType `json:"rows"`
	}
	if err := client.postAuth(ctx, "/getServices", map[string]any{}, &result); err != nil {
		return nil, err
	}
	return result.Rows, nil
}

// GetService fetches a single service by ID.
func (client *Client) GetService(ctx context.Context, serviceID int) (*schema.ServiceType, error) {
	var result struct {
		Rows []schema.ServiceType `json:"rows"`
	}
	if err := client.postAuth(ctx, "/getServices", map[string]any{"service_id": serviceID}, &result); err != nil {
		return nil, err
	}
	if len(result.Rows) == 0 {
		return nil, &Error{Kind: KindNotFound, Path: "/getServices", Err: fmt.Errorf("service %d not found", serviceID)}
	}
	return &result.Rows[0], nil
}

// ServiceGuestsSlotted lists the guests currently occupying slots for
// a service.
func (client *Client) ServiceGuestsSlotted(ctx context.Context, serviceID int) ([]schema.Guest, error) {
	var guests []schema.Guest
	if err := client.postAuth(ctx, "/serviceGuestsSlotted", map[string]any{"service_id": serviceID}, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

// ServiceGuestsQueued lists the guests waiting for a service. The
// backend's row schema for this endpoint is not yet pinned down, so
// rows decode as generic maps and render as key/value pairs.
func (client *Client) ServiceGuestsQueued(ctx context.Context, serviceID int) ([]map[string]any, error) {
	var rows []map[string]any
	if err := client.postAuth(ctx, "/serviceGuestsQueued", map[string]any{"service_id": serviceID}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ServiceGuestsCompleted lists the guests who finished a service
// today. Same unpinned row schema as ServiceGuestsQueued.
func (client *Client) ServiceGuestsCompleted(ctx context.Context, serviceID int) ([]map[string]any, error) {
	var rows []map[string]any
	if err := client.postAuth(ctx, "/serviceGuestsCompleted", map[string]any{"service_id": serviceID}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateGuestServiceStatus moves a guest between queued, slotted, and
// completed for one service. slotID is the slot being assigned when
// status is Slotted; pass nil otherwise.
func (client *Client) UpdateGuestServiceStatus(ctx context.Context, status schema.GuestServiceStatus, guestID, serviceID int, slotID *int) error {
	body := map[string]any{
		"status":     status,
		"guest_id":   guestID,
		"service_id": serviceID,
		"slot_id":    slotID,
	}

	// Success is communicated by HTTP status alone; there is no body.
	return client.postAuth(ctx, "/updateGuestServiceStatus", body, nil)
}
