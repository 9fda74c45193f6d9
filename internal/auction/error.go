package auction

import "errors"

var (
	// -- Authentication/Authorization --
	ErrNotSignedIn = errors.New("sign in to place a bid")
	ErrOwnListing  = errors.New("cannot bid on your own listing")

	// -- Validation & Input --
	ErrInvalidAmount = errors.New("bid amount is not a valid number")
	ErrBidTooLow     = errors.New("bid must exceed the leading bid")

	// -- Resource State --
	ErrNotAuction    = errors.New("product is not an auction")
	ErrAuctionClosed = errors.New("auction has ended")
)
