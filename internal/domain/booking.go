package domain

import (
	"time"

	"github.com/tritoncc/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed is the only status this service creates bookings with
	StatusConfirmed BookingStatus = "confirmed"

	// StatusTentative marks an externally placed hold. The service never writes
	// this status itself, but a tentative booking blocks its slot.
	StatusTentative BookingStatus = "tentative"

	// StatusCancelled is terminal. Cancelled bookings stay on record and no
	// longer occupy their slot.
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a consultation appointment on the shared calendar
type Booking struct {
	ID        int64
	Reference string // stable external identifier handed to the customer

	BookingDate time.Time
	StartTime   types.TimeString

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ServiceType      string
	ConsultationType string
	ProjectDetails   *string

	Status BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusTentative
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled.
// Cancellation is terminal, so only active bookings qualify.
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// DayBookingsFilter narrows booking queries to a single calendar date
type DayBookingsFilter struct {
	Date            time.Time
	Status          *BookingStatus // exact status match, optional
	IncludeInactive bool           // include cancelled bookings
}
