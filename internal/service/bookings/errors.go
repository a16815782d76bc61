package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the reference
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyCancelled is returned when cancelling a cancelled booking.
	// Cancellation is terminal and cannot be repeated or reversed.
	ErrAlreadyCancelled = errors.New("bookings: booking is already cancelled")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("bookings: internal error")
)
