package get_available_dates

import (
	"context"
	"time"

	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
)

// SlotsProvider resolves the bookable slots for one date.
// Implemented by the get_available_slots usecase.
type SlotsProvider interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
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
