package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tritoncc/booking-service/internal/domain"
	bookingRepo "github.com/tritoncc/booking-service/internal/infra/storage/booking"
	"github.com/tritoncc/booking-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.DayBookingsFilter
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCalendar() *domain.BusinessCalendar {
	weekday := domain.DayHours{Open: "07:00", Close: "17:00", LunchStart: "12:00", LunchEnd: "13:00"}
	return &domain.BusinessCalendar{
		Location:            time.UTC,
		Monday:              weekday,
		Tuesday:             weekday,
		Wednesday:           weekday,
		Thursday:            weekday,
		Friday:              weekday,
		Saturday:            domain.DayHours{Open: "08:00", Close: "15:00"},
		Sunday:              domain.DayHours{},
		SlotDurationMinutes: 60,
		BufferMinutes:       30,
		MinNoticeMinutes:    120,
		LookAheadDays:       14,
	}
}

// Monday, two weeks out from the test clock
var testMonday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

// far enough in the past that the notice filter never interferes
var testClock = fixedClock{now: time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)}

func slotTimes(slots []domain.AvailableSlot) []types.TimeString {
	out := make([]types.TimeString, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime
	}
	return out
}

func TestExecute_EmptyDayNoBookings(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, testCalendar(), testClock, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{
		"07:00", "08:00", "09:00", "10:00", "11:00",
		"13:00", "14:00", "15:00", "16:00",
	}, slotTimes(resp.Slots))
	assert.Equal(t, "7:00 AM", resp.Slots[0].DisplayTime)
}

func TestExecute_ClosedDay(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, testCalendar(), testClock, nopLogger{})

	sunday := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookingBlocksNeighbours(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: "10:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, testCalendar(), testClock, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	require.NoError(t, err)

	// 09:00, 10:00 and 11:00 fall inside the 90-minute conflict window
	assert.Equal(t, []types.TimeString{
		"07:00", "08:00", "13:00", "14:00", "15:00", "16:00",
	}, slotTimes(resp.Slots))
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	// the repository's default filter excludes inactive bookings, so a
	// cancelled booking never reaches the conflict check
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, testCalendar(), testClock, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 9)
	assert.Nil(t, repo.lastFilter.Status)
	assert.False(t, repo.lastFilter.IncludeInactive)
}

func TestExecute_MinimumNotice(t *testing.T) {
	repo := &fakeBookingRepo{}
	sameDayClock := fixedClock{now: time.Date(2026, time.March, 2, 7, 30, 0, 0, time.UTC)}
	uc := NewUseCase(repo, testCalendar(), sameDayClock, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	require.NoError(t, err)

	// cutoff is 09:30, everything at or before it is gone
	assert.Equal(t, []types.TimeString{
		"10:00", "11:00", "13:00", "14:00", "15:00", "16:00",
	}, slotTimes(resp.Slots))
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: "13:00", Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, testCalendar(), testClock, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, testCalendar(), testClock, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, testCalendar(), testClock, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_SerializationAbortStaysMatchable(t *testing.T) {
	// inside a confirm transaction the locked read can abort with SQLSTATE
	// 40001; the wrap added here must keep it visible to the retry loop
	pqErr := &pq.Error{Code: "40001"}
	repo := &fakeBookingRepo{
		err: fmt.Errorf("%w: ListByDate - execute query: %w", bookingRepo.ErrExecQuery, pqErr),
	}
	uc := NewUseCase(repo, testCalendar(), testClock, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testMonday})
	assert.ErrorIs(t, err, ErrInternal)

	var unwrapped *pq.Error
	require.ErrorAs(t, err, &unwrapped)
	assert.Equal(t, pq.ErrorCode("40001"), unwrapped.Code)
}
