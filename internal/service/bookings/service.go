package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tritoncc/booking-service/internal/domain"
	bookingRepo "github.com/tritoncc/booking-service/internal/infra/storage/booking"
	"github.com/tritoncc/booking-service/internal/integrations/notifier"
	"github.com/tritoncc/booking-service/internal/service/bookings/models"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
	"github.com/tritoncc/booking-service/pkg/ptr"
)

// Service covers booking lookup, cancellation and the daily schedule view
type Service struct {
	bookingRepo  BookingRepository
	slots        SlotsProvider
	notifier     NotificationPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings service
func NewService(
	bookingRepo BookingRepository,
	slots SlotsProvider,
	notifier NotificationPublisher,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		slots:        slots,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByReference fetches a booking by its external reference.
// Cancelled bookings stay queryable; the audit trail never shrinks.
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking %s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for booking %s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel marks a booking cancelled and frees its slot for new bookings.
// The historical record is kept.
func (s *Service) Cancel(ctx context.Context, reference string) error {
	s.logger.Info("Cancel: cancelling booking %s", reference)

	if reference == "" {
		return fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking %s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking %s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking %s already cancelled", reference)
		return ErrAlreadyCancelled
	}

	now := s.timeProvider.Now()
	if err := s.bookingRepo.Cancel(ctx, reference, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking %s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking %s cancelled, slot %s on %s is free again",
		reference, booking.StartTime, booking.BookingDate.Format(domain.DateFormat))

	s.notifier.PublishBestEffort(ctx, &notifier.BookingEvent{
		Event:         notifier.EventBookingCancelled,
		Reference:     booking.Reference,
		Date:          booking.BookingDate.Format(domain.DateFormat),
		StartTime:     booking.StartTime.String(),
		DisplayTime:   booking.StartTime.Display(),
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		CustomerEmail: booking.CustomerEmail,
		ServiceType:   booking.ServiceType,
	})

	return nil
}

// GetDailySchedule builds the operator view for one date: how many slots are
// still open, which bookings are confirmed (ascending by start time) and the
// full available slot list.
func (s *Service) GetDailySchedule(ctx context.Context, date time.Time) (*models.DailyScheduleResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slotsResp, err := s.slots.Execute(ctx, &getAvailableSlots.Request{Date: date})
	if err != nil {
		s.logger.Error("GetDailySchedule: failed to resolve slots for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDailySchedule - resolve slots: %v", ErrInternal, err)
	}

	confirmed, err := s.bookingRepo.ListByDate(ctx, domain.DayBookingsFilter{
		Date:   date,
		Status: ptr.Ptr(domain.StatusConfirmed),
	})
	if err != nil {
		s.logger.Error("GetDailySchedule: failed to list bookings for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDailySchedule - repository error: %v", ErrInternal, err)
	}

	bookingDTOs := make([]models.BookingResponse, len(confirmed))
	for i, booking := range confirmed {
		bookingDTOs[i] = *models.FromDomainBooking(booking)
	}

	return &models.DailyScheduleResponse{
		Date:           date.Format(domain.DateFormat),
		AvailableCount: len(slotsResp.Slots),
		BookedCount:    len(confirmed),
		Bookings:       bookingDTOs,
		AvailableSlots: models.FromDomainSlots(slotsResp.Slots),
	}, nil
}
