package get_available_slots

import (
	"context"
	"fmt"

	"github.com/tritoncc/booking-service/internal/domain"
)

// UseCase computes the bookable slots for a single calendar date.
// The result is re-derived from the live booking set on every call so a
// booking committed between two queries is always reflected.
type UseCase struct {
	bookingRepo  BookingRepository
	calendar     *domain.BusinessCalendar
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new instance of the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	calendar *domain.BusinessCalendar,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendar:     calendar,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute computes the available slots for the requested date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Sample the clock once for the whole operation
	now := uc.timeProvider.Now()

	// 3. Generate the day's candidate slots from the static calendar
	hours := uc.calendar.HoursFor(req.Date)
	candidates, err := generateDaySlots(hours, uc.calendar.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []domain.AvailableSlot{}}, nil
	}

	// 4. Load the date's active bookings (confirmed and tentative both block)
	bookings, err := uc.bookingRepo.ListByDate(ctx, domain.DayBookingsFilter{Date: req.Date})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: list bookings: %w", ErrInternal, err)
	}

	// 5. Filter by booking conflicts and minimum notice
	window := uc.calendar.ConflictWindowMinutes()
	available := make([]domain.AvailableSlot, 0, len(candidates))
	for _, candidate := range candidates {
		if conflictsWithBookings(candidate, bookings, window) {
			continue
		}
		if isWithinNotice(req.Date, candidate, now, uc.calendar.MinNoticeMinutes, uc.calendar.Location) {
			continue
		}
		available = append(available, domain.NewAvailableSlot(candidate))
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(candidates), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: available}, nil
}
