package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
)

// UseCase scans the booking horizon for dates with at least one bookable slot
type UseCase struct {
	slots        SlotsProvider
	calendar     *domain.BusinessCalendar
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new instance of the usecase
func NewUseCase(
	slots SlotsProvider,
	calendar *domain.BusinessCalendar,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slots:        slots,
		calendar:     calendar,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute returns the dates from tomorrow through DaysAhead days out
// (inclusive) that have at least one bookable slot, ascending.
// DaysAhead is clamped to the configured look-ahead horizon.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	daysAhead := req.DaysAhead
	if daysAhead > uc.calendar.LookAheadDays {
		daysAhead = uc.calendar.LookAheadDays
	}
	if daysAhead <= 0 {
		return &Response{Dates: []time.Time{}}, nil
	}

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.calendar.Location)

	dates := make([]time.Time, 0, daysAhead)
	for i := 1; i <= daysAhead; i++ {
		date := today.AddDate(0, 0, i)

		// closed weekdays cannot have slots, skip the booking-store read
		if uc.calendar.HoursFor(date).IsClosed() {
			continue
		}

		resp, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{Date: date})
		if err != nil {
			uc.logger.Error("GetAvailableDates: failed to resolve slots for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: resolve slots for %s: %v", ErrInternal, date.Format(domain.DateFormat), err)
		}

		if len(resp.Slots) > 0 {
			dates = append(dates, date)
		}
	}

	uc.logger.Info("GetAvailableDates: %d of %d days have availability", len(dates), daysAhead)

	return &Response{Dates: dates}, nil
}
