package catalog

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields       = errors.New("name, price and category are required")
	ErrMissingCategoryName = errors.New("category name is required")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
