package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingAddress = errors.New("shipping address is required")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order is not in the right state for this action")
)
