// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// User is an authenticated staff account. Identity and credentials
// live in the external identity provider; the backend keeps a profile
// row keyed by the provider's subject identifier.
type User struct {
	UserID int `json:"user_id"`

	// Sub is the identity provider's subject identifier for this
	// account, the join key between provider and backend.
	Sub string `json:"sub,omitempty"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}
