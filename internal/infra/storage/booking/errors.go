package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the identifier
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateReference is returned when a booking reference collides
	ErrDuplicateReference = errors.New("booking.repository: duplicate booking reference")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
