// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// ServiceType is a named service offering (shower, laundry, courtyard
// access). The catalog is reference data fetched once at startup;
// clients never mutate it.
type ServiceType struct {
	ServiceID int    `json:"service_id"`
	Name      string `json:"name"`

	// Quota and NumSlots describe service capacity. They are carried
	// through from the backend for the dashboard views but the visit
	// workflow does not interpret them.
	Quota    int `json:"quota,omitempty"`
	NumSlots int `json:"num_slots,omitempty"`
}

// GuestServiceStatus is the progress of one guest through one service
// on a visit. Mutated only via the update-status endpoint.
type GuestServiceStatus string

const (
	GuestServiceQueued    GuestServiceStatus = "Queued"
	GuestServiceSlotted   GuestServiceStatus = "Slotted"
	GuestServiceCompleted GuestServiceStatus = "Completed"
)

// DefaultServiceType returns the catalog entry matching defaultName,
// falling back to the first entry when no name matches, and nil when
// the catalog is empty.
func DefaultServiceType(catalog []ServiceType, defaultName string) *ServiceType {
	if len(catalog) == 0 {
		return nil
	}
	for index := range catalog {
		if catalog[index].Name == defaultName {
			return &catalog[index]
		}
	}
	return &catalog[0]
}
