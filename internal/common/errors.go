// Package common defines shared sentinel errors used across the stylist
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Gateway-level errors.
	ErrSessionExpired = errors.New("session expired")
	ErrUnavailable    = errors.New("server unavailable")

	// Session store errors.
	ErrNotFound = errors.New("not found")

	// Outfit generation: the server found no eligible items for the given
	// filters. Informational for the user, not a failure.
	ErrNoMatch = errors.New("no items match")

	// Interactive input was abandoned before commit.
	ErrCancelled = errors.New("cancelled")
)
