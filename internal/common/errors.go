// Package common defines shared constants and sentinel errors used across
// client and server layers of gophpass. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Password lifecycle errors.
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailNotAttached   = errors.New("email not attached")
	ErrInvalidOldPassword = errors.New("invalid old password")

	// ErrOperationFailed marks a failed unit of work that was rolled back.
	// The underlying cause is wrapped alongside it.
	ErrOperationFailed = errors.New("operation failed")

	// ErrNotificationFailed marks a notification that could not be delivered.
	ErrNotificationFailed = errors.New("notification failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
