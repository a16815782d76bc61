package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tritoncc/booking-service/internal/domain"
	bookingRepo "github.com/tritoncc/booking-service/internal/infra/storage/booking"
	"github.com/tritoncc/booking-service/internal/integrations/notifier"
	getAvailableSlots "github.com/tritoncc/booking-service/internal/usecase/get_available_slots"
	"github.com/tritoncc/booking-service/pkg/types"
)

// memStore is an in-memory booking store shared between the fake slots
// provider and the fake repository. Its mutex stands in for the serializable
// transaction: the tx manager holds it around the check-then-insert section,
// so a concurrent confirm observes either none or all of another confirm.
type memStore struct {
	mu      sync.Mutex
	booked  map[string]bool
	created []*domain.Booking
}

func newMemStore() *memStore {
	return &memStore{booked: make(map[string]bool)}
}

func slotKey(date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%s|%s", date.Format(domain.DateFormat), start)
}

type lockingTxManager struct {
	store *memStore
}

func (m *lockingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

type storeSlotsProvider struct {
	store      *memStore
	candidates []types.TimeString
}

func (s *storeSlotsProvider) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	slots := make([]domain.AvailableSlot, 0, len(s.candidates))
	for _, candidate := range s.candidates {
		if !s.store.booked[slotKey(req.Date, candidate)] {
			slots = append(slots, domain.NewAvailableSlot(candidate))
		}
	}
	return &getAvailableSlots.Response{Date: req.Date, Slots: slots}, nil
}

type storeRepo struct {
	store *memStore

	createErr    error
	failuresLeft int // how many Create calls fail with createErr before succeeding
	seenRefs     []string
}

func (r *storeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.seenRefs = append(r.seenRefs, booking.Reference)
	if r.failuresLeft > 0 {
		r.failuresLeft--
		return nil, r.createErr
	}
	r.store.booked[slotKey(booking.BookingDate, booking.StartTime)] = true
	booking.ID = int64(len(r.store.created) + 1)
	booking.CreatedAt = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	r.store.created = append(r.store.created, booking)
	return booking, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*notifier.BookingEvent
}

func (p *recordingPublisher) PublishBestEffort(_ context.Context, event *notifier.BookingEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func newTestUseCase(store *memStore, repo *storeRepo, publisher *recordingPublisher) *UseCase {
	slots := &storeSlotsProvider{
		store:      store,
		candidates: []types.TimeString{"07:00", "08:30", "10:00", "13:00", "14:30"},
	}
	return NewUseCase(repo, slots, publisher, &lockingTxManager{store: store}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		Date:          testDate,
		StartTime:     "10:00",
		CustomerName:  "Keoni Akana",
		CustomerPhone: "808-555-0142",
		ServiceType:   "drywall",
	}
}

func TestExecute_Success(t *testing.T) {
	store := newMemStore()
	repo := &storeRepo{store: store}
	publisher := &recordingPublisher{}
	uc := newTestUseCase(store, repo, publisher)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Reference, "RT-"))
	assert.Len(t, resp.Reference, 11)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "10:00 AM", resp.DisplayTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Keoni Akana", resp.CustomerName)

	require.Len(t, store.created, 1)
	assert.Equal(t, domain.StatusConfirmed, store.created[0].Status)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, notifier.EventBookingConfirmed, publisher.events[0].Event)
	assert.Equal(t, resp.Reference, publisher.events[0].Reference)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(newMemStore(), &storeRepo{store: newMemStore()}, &recordingPublisher{})

	missingDate := validRequest()
	missingDate.Date = time.Time{}
	_, err := uc.Execute(context.Background(), missingDate)
	assert.ErrorIs(t, err, ErrInvalidInput)

	missingTime := validRequest()
	missingTime.StartTime = ""
	_, err = uc.Execute(context.Background(), missingTime)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badTime := validRequest()
	badTime.StartTime = "10am"
	_, err = uc.Execute(context.Background(), badTime)
	assert.ErrorIs(t, err, ErrInvalidInput)

	missingName := validRequest()
	missingName.CustomerName = ""
	_, err = uc.Execute(context.Background(), missingName)
	assert.ErrorIs(t, err, ErrInvalidInput)

	longField := validRequest()
	longField.CustomerName = strings.Repeat("a", domain.MaxCustomerFieldLen+1)
	_, err = uc.Execute(context.Background(), longField)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotConflictCarriesAlternatives(t *testing.T) {
	store := newMemStore()
	store.booked[slotKey(testDate, "10:00")] = true
	repo := &storeRepo{store: store}
	publisher := &recordingPublisher{}
	uc := newTestUseCase(store, repo, publisher)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Len(t, conflict.AvailableSlots, 4)

	// nothing was stored or announced
	assert.Empty(t, store.created)
	assert.Empty(t, publisher.events)
}

func TestExecute_ReferenceCollisionRetried(t *testing.T) {
	store := newMemStore()
	repo := &storeRepo{
		store:        store,
		createErr:    fmt.Errorf("%w: RT-DEADBEEF", bookingRepo.ErrDuplicateReference),
		failuresLeft: 1,
	}
	uc := newTestUseCase(store, repo, &recordingPublisher{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.seenRefs, 2)
	assert.NotEqual(t, repo.seenRefs[0], repo.seenRefs[1])
	assert.Equal(t, repo.seenRefs[1], resp.Reference)
}

func TestExecute_StoreFailure(t *testing.T) {
	store := newMemStore()
	repo := &storeRepo{
		store:        store,
		createErr:    errors.New("connection reset"),
		failuresLeft: 1,
	}
	publisher := &recordingPublisher{}
	uc := newTestUseCase(store, repo, publisher)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, publisher.events)
}

func TestExecute_ConcurrentConfirmsSameSlot(t *testing.T) {
	store := newMemStore()
	repo := &storeRepo{store: store}
	publisher := &recordingPublisher{}
	uc := newTestUseCase(store, repo, publisher)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotNotAvailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, store.created, 1)
	assert.Len(t, publisher.events, 1)
}

func TestNewReference_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := newReference()
		assert.True(t, strings.HasPrefix(ref, "RT-"))
		assert.Len(t, ref, 11)
		assert.Equal(t, strings.ToUpper(ref), ref)
		seen[ref] = true
	}
	assert.Len(t, seen, 100)
}
