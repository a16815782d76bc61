package get_available_dates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tritoncc/booking-service/internal/domain"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
)

type fakeSlotsProvider struct {
	// slots reported per "2006-01-02" date key; absent dates yield none
	slotsByDate map[string]int
	err         error
	queried     []time.Time
}

func (f *fakeSlotsProvider) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.queried = append(f.queried, req.Date)
	if f.err != nil {
		return nil, f.err
	}
	n := f.slotsByDate[req.Date.Format(domain.DateFormat)]
	slots := make([]domain.AvailableSlot, n)
	for i := range slots {
		slots[i] = domain.NewAvailableSlot("10:00")
	}
	return &getAvailableSlots.Response{Date: req.Date, Slots: slots}, nil
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

// Monday
var testNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func TestExecute_NonPositiveDaysAhead(t *testing.T) {
	provider := &fakeSlotsProvider{}
	uc := NewUseCase(provider, testCalendar(), fixedClock{now: testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DaysAhead: 0})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
	assert.Empty(t, provider.queried)
}

func TestExecute_AscendingOpenDates(t *testing.T) {
	provider := &fakeSlotsProvider{slotsByDate: map[string]int{
		"2026-03-03": 9,
		"2026-03-04": 1,
		"2026-03-05": 3,
	}}
	uc := NewUseCase(provider, testCalendar(), fixedClock{now: testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DaysAhead: 3})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 3)
	assert.Equal(t, "2026-03-03", resp.Dates[0].Format(domain.DateFormat))
	assert.Equal(t, "2026-03-04", resp.Dates[1].Format(domain.DateFormat))
	assert.Equal(t, "2026-03-05", resp.Dates[2].Format(domain.DateFormat))
}

func TestExecute_FullyBookedDateOmitted(t *testing.T) {
	provider := &fakeSlotsProvider{slotsByDate: map[string]int{
		"2026-03-03": 2,
		// 2026-03-04 has no slot left
		"2026-03-05": 1,
	}}
	uc := NewUseCase(provider, testCalendar(), fixedClock{now: testNow}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DaysAhead: 3})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 2)
	assert.Equal(t, "2026-03-03", resp.Dates[0].Format(domain.DateFormat))
	assert.Equal(t, "2026-03-05", resp.Dates[1].Format(domain.DateFormat))
}

func TestExecute_ClosedDaysSkipStoreRead(t *testing.T) {
	provider := &fakeSlotsProvider{slotsByDate: map[string]int{}}
	uc := NewUseCase(provider, testCalendar(), fixedClock{now: testNow}, nopLogger{})

	// seven days from Monday cover Sunday 2026-03-08
	_, err := uc.Execute(context.Background(), &Request{DaysAhead: 7})
	require.NoError(t, err)

	for _, queried := range provider.queried {
		assert.NotEqual(t, time.Sunday, queried.Weekday())
	}
	assert.Len(t, provider.queried, 6)
}

func TestExecute_ClampsToLookAheadHorizon(t *testing.T) {
	provider := &fakeSlotsProvider{slotsByDate: map[string]int{}}
	uc := NewUseCase(provider, testCalendar(), fixedClock{now: testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DaysAhead: 1000})
	require.NoError(t, err)

	// 14 calendar days from Monday contain two Sundays
	assert.Len(t, provider.queried, 12)
	last := provider.queried[len(provider.queried)-1]
	assert.Equal(t, "2026-03-16", last.Format(domain.DateFormat))
}

func TestExecute_ProviderError(t *testing.T) {
	provider := &fakeSlotsProvider{err: errors.New("boom")}
	uc := NewUseCase(provider, testCalendar(), fixedClock{now: testNow}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DaysAhead: 3})
	assert.ErrorIs(t, err, ErrInternal)
}
