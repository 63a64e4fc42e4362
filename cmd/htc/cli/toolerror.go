// Copyright 2026 The HTC App Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command failures so scripts and operators can
// tell a bad request from a flaky backend without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates malformed or rejected input.
	CategoryValidation ErrorCategory = "validation"
	// CategoryNotFound indicates a missing guest, user, or service.
	CategoryNotFound ErrorCategory = "not_found"
	// CategoryForbidden indicates an authentication or permission failure.
	CategoryForbidden ErrorCategory = "forbidden"
	// CategoryConflict indicates the operation clashed with existing state.
	CategoryConflict ErrorCategory = "conflict"
	// CategoryTransient indicates a retryable failure (network, 5xx).
	CategoryTransient ErrorCategory = "transient"
	// CategoryInternal indicates a bug or unexpected condition.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError wraps a command failure with a machine-readable category.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ValidationError creates a ToolError for malformed or rejected input.
func ValidationError(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFoundError creates a ToolError for a missing resource.
func NotFoundError(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// ForbiddenError creates a ToolError for auth and permission failures.
func ForbiddenError(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// ConflictError creates a ToolError for state conflicts.
func ConflictError(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// TransientError creates a ToolError for retryable failures.
func TransientError(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// InternalError creates a ToolError for unexpected conditions.
func InternalError(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
