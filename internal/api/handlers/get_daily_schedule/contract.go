package get_daily_schedule

import (
	"context"
	"time"

	"github.com/tritoncc/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetDailySchedule(ctx context.Context, date time.Time) (*models.DailyScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
