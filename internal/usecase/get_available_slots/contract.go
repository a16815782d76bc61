package get_available_slots

import (
	"context"
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
)

// BookingRepository is the read surface of the booking store the resolver needs
type BookingRepository interface {
	// ListByDate returns the bookings for one calendar date, active only
	// unless the filter says otherwise
	ListByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider supplies the current instant in the business time zone
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
