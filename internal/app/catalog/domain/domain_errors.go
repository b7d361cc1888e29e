package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound    = errors.New("product not found")
	ErrEmptyProductID     = errors.New("product id cannot be empty")
	ErrEmptyName          = errors.New("product name cannot be empty")
	ErrInvalidPrice       = errors.New("product price cannot be negative")
	ErrOriginalBelowPrice = errors.New("original price cannot be lower than price")
	ErrInvalidRating      = errors.New("rating must be between 0 and 5")
	ErrInvalidReviews     = errors.New("review count cannot be negative")

	// Catalog errors
	ErrDuplicateProduct = errors.New("duplicate product id in catalog")
	ErrDuplicateBrand   = errors.New("duplicate brand id in catalog")

	// Filter errors
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidSortKey    = errors.New("invalid sort key")
)
