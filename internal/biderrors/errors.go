package biderrors

import "errors"

// Repository-level errors
var (
	ErrBidNotFound      = errors.New("bid not found")
	ErrListingNotFound  = errors.New("listing not found")
	ErrStoreUnavailable = errors.New("bid store unavailable")
)

// business logic errors
var (
	ErrUnauthenticated   = errors.New("no authenticated session")
	ErrUnauthorized      = errors.New("caller may not perform this action")
	ErrInvalidTransition = errors.New("action not allowed from current bid status")
	ErrInvalidOffer      = errors.New("invalid offer amount")
	ErrSelfBidForbidden  = errors.New("sellers cannot bid on their own listings")
)
