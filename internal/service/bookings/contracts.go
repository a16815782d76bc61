package bookings

import (
	"context"
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
	"github.com/tritoncc/booking-service/internal/integrations/notifier"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
)

// BookingRepository is the booking store surface the service needs
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByDate(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, reference string, cancelledAt time.Time) error
}

// SlotsProvider resolves the bookable slots for one date
type SlotsProvider interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// NotificationPublisher delivers booking events to the notification gateway
type NotificationPublisher interface {
	PublishBestEffort(ctx context.Context, event *notifier.BookingEvent)
}

// TimeProvider supplies the current instant in the business time zone
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
