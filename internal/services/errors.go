package services

import "errors"

// Service-level error taxonomy. Handlers translate these into HTTP
// status codes; everything else surfaces as a generic 500.
var (
	// ErrEmailTaken means the email is already registered to another user.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers a bad signature, malformed structure or
	// expired token, undifferentiated for the same reason.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound covers both a missing resource and one owned by a
	// different user.
	ErrNotFound = errors.New("not found")
)
