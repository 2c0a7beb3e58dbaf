package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Interval errors
	ErrInvalidInterval = errors.New("invalid interval")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrResourceConflict    = errors.New("resource conflict")
	ErrNoAvailability      = errors.New("no availability")

	// Entitlement errors
	ErrRightsLookup = errors.New("rights lookup failed")

	// Payment policy errors
	ErrInvalidPolicy  = errors.New("invalid payment policy")
	ErrPolicyNotFound = errors.New("payment policy not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
