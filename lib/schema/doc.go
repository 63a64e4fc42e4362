// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the domain types shared between the API client
// and the terminal UI: guests, service types, visits, notifications, and
// system users. JSON tags on these types match the backend wire contract
// exactly; the backend owns the schema and this package mirrors it.
package schema
