// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"

	"github.com/1111philo/htc-app/lib/schema"
)

// AddVisit logs the check-in described by the visit record (one guest,
// one or more service IDs) and returns the new visit's ID. The backend
// rejects a visit with no services; the UI enforces the same invariant
// before calling.
func (client *Client) AddVisit(ctx context.Context, visit schema.Visit) (int, error) {
	if visit.GuestID == 0 {
		return 0, &Error{Kind: KindServer, Path: "/addVisit", Err: fmt.Errorf("visit requires a guest")}
	}
	if len(visit.ServiceIDs) == 0 {
		return 0, &Error{Kind: KindServer, Path: "/addVisit", Err: fmt.Errorf("visit requires at least one service")}
	}

	body := map[string]any{
		"guest_id":    visit.GuestID,
		"service_ids": visit.ServiceIDs,
	}

	var result struct {
		VisitID int `json:"visit_id"`
	}
	if err := client.postAuth(ctx, "/addVisit", body, &result); err != nil {
		return 0, err
	}
	if result.VisitID == 0 {
		return 0, &Error{Kind: KindServer, Path: "/addVisit", Err: fmt.Errorf("response has no visit_id")}
	}
	return result.VisitID, nil
}
