// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Visit links one guest to the set of services requested at a single
// check-in. Visits are immutable once created; only the per-service
// status of the guest changes afterwards, through the dashboard.
type Visit struct {
	VisitID    int   `json:"visit_id"`
	GuestID    int   `json:"guest_id"`
	ServiceIDs []int `json:"service_ids"`
}
