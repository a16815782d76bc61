package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tritoncc/booking-service/internal/domain"
	bookingRepo "github.com/tritoncc/booking-service/internal/infra/storage/booking"
	"github.com/tritoncc/booking-service/internal/integrations/notifier"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
)

// maxReferenceAttempts bounds retries when a generated reference collides
const maxReferenceAttempts = 3

// UseCase confirms a booking against the shared calendar.
// The availability re-check and the insert run inside one serializable
// transaction, so two concurrent confirms for the same slot cannot both
// observe it as free.
type UseCase struct {
	bookingRepo BookingRepository
	slots       SlotsProvider
	notifier    NotificationPublisher
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates a new instance of the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	slots SlotsProvider,
	notifier NotificationPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slots:       slots,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute validates and commits the booking
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, customer=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.CustomerName)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Commit inside a serializable transaction, retrying a fresh reference
	//    on the unlikely collision
	var result *domain.Booking
	var err error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		result, err = uc.commit(ctx, req, newReference())
		if !errors.Is(err, bookingRepo.ErrDuplicateReference) {
			break
		}
		uc.logger.Warn("CreateBooking: booking reference collision, retrying")
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: confirmed booking %s for %s at %s",
		result.Reference, result.BookingDate.Format(domain.DateFormat), result.StartTime)

	// 3. Publish the confirmation event; delivery failures never undo a booking
	uc.notifier.PublishBestEffort(ctx, &notifier.BookingEvent{
		Event:            notifier.EventBookingConfirmed,
		Reference:        result.Reference,
		Date:             result.BookingDate.Format(domain.DateFormat),
		StartTime:        result.StartTime.String(),
		DisplayTime:      result.StartTime.Display(),
		CustomerName:     result.CustomerName,
		CustomerPhone:    result.CustomerPhone,
		CustomerEmail:    result.CustomerEmail,
		ServiceType:      result.ServiceType,
		ConsultationType: result.ConsultationType,
	})

	return &Response{
		Reference:    result.Reference,
		Date:         result.BookingDate,
		StartTime:    result.StartTime,
		DisplayTime:  result.StartTime.Display(),
		Status:       string(result.Status),
		CustomerName: result.CustomerName,
		ServiceType:  result.ServiceType,
		CreatedAt:    result.CreatedAt,
	}, nil
}

// commit runs the availability re-check and insert as one atomic step
func (uc *UseCase) commit(ctx context.Context, req *Request, reference string) (*domain.Booking, error) {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Re-derive truth from the booking store at commit time. The caller's
		// earlier availability read may be stale; this one is not, and the
		// rows it touches stay locked until the insert lands.
		slotsResp, err := uc.slots.Execute(txCtx, &getAvailableSlots.Request{Date: req.Date})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to re-check availability: %v", err)
			return fmt.Errorf("%w: re-check availability: %w", ErrInternal, err)
		}

		if !containsSlot(slotsResp.Slots, req) {
			uc.logger.Warn("CreateBooking: slot %s on %s no longer available",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return &SlotConflictError{AvailableSlots: slotsResp.Slots}
		}

		booking := &domain.Booking{
			Reference:        reference,
			BookingDate:      req.Date,
			StartTime:        req.StartTime,
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			CustomerEmail:    req.CustomerEmail,
			ServiceType:      req.ServiceType,
			ConsultationType: req.ConsultationType,
			ProjectDetails:   req.ProjectDetails,
			Status:           domain.StatusConfirmed,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateReference) {
				return err
			}
			uc.logger.Error("CreateBooking: failed to persist booking: %v", err)
			return fmt.Errorf("%w: persist booking: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func containsSlot(slots []domain.AvailableSlot, req *Request) bool {
	for _, slot := range slots {
		if slot.StartTime == req.StartTime {
			return true
		}
	}
	return false
}

// newReference builds a customer-facing booking reference from a random UUID.
// The random id space replaces second-resolution timestamps, which collide
// when two bookings land in the same second; the store's unique constraint
// backstops the residual risk.
func newReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RT-" + id[:8]
}
