// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"net/http"

	"github.com/1111philo/htc-app/lib/api"
)

// CategorizeAPIError converts backend client failures into categorized
// ToolErrors. Errors that are not *api.Error fall through as internal.
func CategorizeAPIError(operation string, err error) *ToolError {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return InternalError("%s: %w", operation, err)
	}

	switch apiErr.Kind {
	case api.KindNotFound:
		return NotFoundError("%s: %w", operation, err)
	case api.KindUnauthorized:
		return ForbiddenError("%s: %w", operation, err)
	case api.KindTransport:
		return TransientError("%s: %w", operation, err)
	default:
		// The backend reports slot contention (two staff assigning the
		// same slot) as 409.
		if apiErr.StatusCode == http.StatusConflict {
			return ConflictError("%s: %w", operation, err)
		}
		if apiErr.Retryable() {
			return TransientError("%s: %w", operation, err)
		}
		return InternalError("%s: %w", operation, err)
	}
}
