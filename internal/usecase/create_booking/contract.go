package create_booking

import (
	"context"

	"github.com/tritoncc/booking-service/internal/domain"
	"github.com/tritoncc/booking-service/internal/integrations/notifier"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
)

// BookingRepository is the write surface of the booking store
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SlotsProvider re-derives the bookable slots for a date. Inside the confirm
// transaction its booking-store read joins the transaction and locks the
// date's rows, which is what makes check-then-insert atomic.
type SlotsProvider interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// NotificationPublisher delivers booking events to the notification gateway
type NotificationPublisher interface {
	PublishBestEffort(ctx context.Context, event *notifier.BookingEvent)
}

// TransactionManager runs the check-then-insert critical section atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
