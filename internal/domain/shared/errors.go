package shared

import "errors"

// Domain-specific errors
var (
	// Bid validation errors, resolved before any network call
	ErrBidNotANumber = errors.New("bid amount is not a number")
	ErrBidTooLow     = errors.New("bid amount must be higher than the current price")
	ErrNoKnownPrice  = errors.New("item has no starting or current price")

	// Listing validation errors
	ErrMissingListingFields = errors.New("title, description, starting bid and deadline are required")
	ErrMissingListingImage  = errors.New("an image file or an image URL is required")
	ErrInvalidStartingBid   = errors.New("starting bid must be a number greater than 0")
	ErrInvalidCategory      = errors.New("unknown listing category")

	// Session errors
	ErrNotSignedIn = errors.New("no user is signed in")

	// Item errors
	ErrItemNotFound = errors.New("item not found")
)
