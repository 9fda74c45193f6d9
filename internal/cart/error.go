package cart

import "errors"

var (
	// -- Authentication/Authorization --
	ErrNotSignedIn = errors.New("sign in to use the cart")

	// -- Resource State --
	ErrCartEmpty = errors.New("cart is empty")

	// -- Checkout --
	ErrPaymentNotReady  = errors.New("payment is not ready")
	ErrCheckoutCanceled = errors.New("checkout canceled")
	ErrPaymentDeclined  = errors.New("payment was not completed")
)
