package session

import "errors"

var (
	// -- Validation & Input --
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingFields      = errors.New("username, email and password are required")

	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid credentials")
)
