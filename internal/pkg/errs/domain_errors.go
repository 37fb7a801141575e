package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingUnavailable = errors.New("listing unavailable for requested dates")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrTerminalState      = errors.New("booking is in a terminal state")

	// Authorization errors
	ErrNotBookingOwner  = errors.New("acting user is not the booking owner")
	ErrNotBookingBooker = errors.New("acting user is not the booking booker")
	ErrNotBookingParty  = errors.New("acting user is not a party to the booking")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
