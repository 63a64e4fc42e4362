// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

// Package api provides a typed HTTP client for the service-center
// backend. Every backend operation is a POST with a JSON body; the
// client exposes one method per endpoint and decodes the response into
// the shared schema types.
//
// The backend publishes two namespaces under one base URL: a public
// namespace authenticated with a static API key, and an auth namespace
// requiring a bearer token. The token is fetched from an injected
// TokenSource on every request, so an expiring identity session
// refreshes transparently.
//
// Failures are never collapsed into booleans or nil sentinels. Every
// method returns an *Error carrying a Kind (transport, not-found,
// unauthorized, server) so callers can tell a retryable outage from a
// terminal rejection.
package api
