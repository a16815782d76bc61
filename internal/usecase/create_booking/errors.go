package create_booking

import (
	"errors"
	"fmt"

	"github.com/tritoncc/booking-service/internal/domain"
)

var (
	// ErrInvalidInput is returned on missing or malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotAvailable is returned when the requested slot fails the
	// commit-time availability re-check
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotConflictError reports a commit-time conflict together with the slot list
// that was current at the moment of rejection, sparing the caller a second
// availability round trip. It unwraps to ErrSlotNotAvailable.
type SlotConflictError struct {
	AvailableSlots []domain.AvailableSlot
}

// Error implements the error interface
func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v (%d alternative slots)", ErrSlotNotAvailable, len(e.AvailableSlots))
}

// Unwrap allows errors.Is matching against ErrSlotNotAvailable
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
