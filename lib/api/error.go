// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net/http"
)

// Kind classifies an API failure so callers can make programmatic
// decisions (retry, re-authenticate, report) without parsing message
// text.
type Kind int

const (
	// KindTransport is a network-level failure: connection refused,
	// timeout, DNS. The request may never have reached the backend.
	KindTransport Kind = iota

	// KindNotFound means the referenced resource does not exist.
	// Retrying with the same parameters will not help.
	KindNotFound

	// KindUnauthorized means the API key or bearer token was missing,
	// expired, or rejected. The caller should re-authenticate.
	KindUnauthorized

	// KindServer is any other backend rejection: 5xx responses,
	// undecodable bodies, or a success envelope reporting failure.
	KindServer
)

// String returns the kind's name for logs and error text.
func (kind Kind) String() string {
	switch kind {
	case KindTransport:
		return "transport"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindServer:
		return "server"
	default:
		return fmt.Sprintf("kind(%d)", int(kind))
	}
}

// Error is a classified backend failure. StatusCode is zero for
// transport errors that produced no HTTP response.
type Error struct {
	Kind       Kind
	Path       string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d (%s): %v", e.Path, e.StatusCode, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the failure is plausibly transient:
// transport errors and 5xx responses. Not-found and auth rejections
// are terminal for the same request.
func (e *Error) Retryable() bool {
	if e.Kind == KindTransport {
		return true
	}
	return e.Kind == KindServer && e.StatusCode >= 500
}

// classifyStatus maps a non-2xx HTTP status to an error kind.
func classifyStatus(statusCode int) Kind {
	switch statusCode {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	default:
		return KindServer
	}
}
