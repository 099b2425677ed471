package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Reservation errors
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrInvalidStayWindow      = errors.New("invalid stay window")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrConcurrentModification = errors.New("reservation modified concurrently")

	// Ledger errors
	ErrInvalidCharge = errors.New("invalid charge")
	ErrLineNotFound  = errors.New("charge line not found")
	ErrImmutableLine = errors.New("charge line is immutable")

	// Catalog errors
	ErrUnitNotFound = errors.New("bookable unit not found")

	// Customer account errors
	ErrEmailTaken         = errors.New("email already registered")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
