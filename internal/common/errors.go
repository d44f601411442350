package common

import "errors"

var (
	// Session errors.
	ErrNoSession    = errors.New("no active session")
	ErrTokenExpired = errors.New("token expired")

	// Configuration errors.
	ErrInvalidBackendURL = errors.New("invalid backend url")
)
