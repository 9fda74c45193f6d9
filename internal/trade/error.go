package trade

import "errors"

var (
	// -- Authentication/Authorization --
	ErrNotSignedIn = errors.New("sign in to propose a trade")
	ErrOwnProduct  = errors.New("cannot propose a trade on your own product")

	// -- Validation & Input --
	ErrNoOfferedProduct = errors.New("select a product to offer")

	// -- Resource State --
	ErrTargetUnavailable = errors.New("target product is no longer available")
	ErrProposalNotFound  = errors.New("trade proposal not found")
)
