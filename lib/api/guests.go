// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/1111philo/htc-app/lib/schema"
)

// searchLimit is the row cap for guest search. The backend applies
// offset/limit pagination; search sends one large page because the
// result set is narrowed by the query, not by paging.
const searchLimit = 50000

// AddGuest creates a guest record and returns its new ID. String
// fields are whitespace-trimmed before submission.
func (client *Client) AddGuest(ctx context.Context, guest schema.Guest) (int, error) {
	guest.TrimStrings()

	body := map[string]any{
		"first_name": guest.FirstName,
		"last_name":  guest.LastName,
		"dob":        guest.DOB,
	}

	var result struct {
		GuestID int `json:"guest_id"`
	}
	if err := client.postAuth(ctx, "/addGuest", body, &result); err != nil {
		return 0, err
	}
	if result.GuestID == 0 {
		return 0, &Error{Kind: KindServer, Path: "/addGuest", Err: fmt.Errorf("response has no guest_id")}
	}
	return result.GuestID, nil
}

// GetGuest fetches one guest's full record, including notifications.
func (client *Client) GetGuest(ctx context.Context, guestID int) (*schema.Guest, error) {
	var guest schema.Guest
	if err := client.postAuth(ctx, "/getGuestData", map[string]any{"guest_id": guestID}, &guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

// SearchGuests resolves a free-text query (ID, name, or YYYY-MM-DD
// birthday) to matching guests. Callers must not pass an empty query;
// an unconstrained search would return the entire guest population.
func (client *Client) SearchGuests(ctx context.Context, query string) ([]schema.Guest, error) {
	if query == "" {
		return nil, &Error{Kind: KindServer, Path: "/getGuests", Err: fmt.Errorf("empty search query")}
	}

	body := map[string]any{
		"query":  query,
		"offset": 0,
		"limit":  searchLimit,
	}

	var result struct {
		Rows []schema.Guest `json:"rows"`
	}
	if err := client.postAuth(ctx, "/getGuests", body, &result); err != nil {
		return nil, err
	}
	return result.Rows, nil
}
