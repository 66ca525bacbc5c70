package create_booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festive-rides/booking-service/internal/domain"
	bookingRepo "github.com/festive-rides/booking-service/internal/infra/storage/booking"
	"github.com/festive-rides/booking-service/pkg/types"
)

// fakeRepo имитирует репозиторий с частичным уникальным индексом:
// вторая вставка на занятый слот получает ErrSlotTaken
type fakeRepo struct {
	mu             sync.Mutex
	nextID         int64
	confirmedSlots map[types.TimeString]bool
	usedReferences map[string]bool
	slotTakenErr   error
	createErr      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		confirmedSlots: make(map[types.TimeString]bool),
		usedReferences: make(map[string]bool),
	}
}

func (f *fakeRepo) SlotTaken(ctx context.Context, slot types.TimeString) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.slotTakenErr != nil {
		return false, f.slotTakenErr
	}
	return f.confirmedSlots[slot], nil
}

func (f *fakeRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.confirmedSlots[booking.TimeSlot] {
		return nil, bookingRepo.ErrSlotTaken
	}
	if f.usedReferences[booking.BookingReference] {
		return nil, bookingRepo.ErrReferenceTaken
	}

	f.confirmedSlots[booking.TimeSlot] = true
	f.usedReferences[booking.BookingReference] = true
	f.nextID++

	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	return &created, nil
}

type fakeRefGenerator struct {
	mu    sync.Mutex
	refs  []string
	calls int
}

func (f *fakeRefGenerator) Generate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref := f.refs[f.calls%len(f.refs)]
	f.calls++
	return ref, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	err    error
	sent   chan *domain.Booking
	closed bool
}

func newFakeNotifier(err error) *fakeNotifier {
	return &fakeNotifier{err: err, sent: make(chan *domain.Booking, 8)}
}

func (f *fakeNotifier) SendBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent <- booking
	return f.err
}

type fakeMetrics struct {
	mu                   sync.Mutex
	created              []string
	conflicts            []string
	notificationFailures int
}

func (f *fakeMetrics) BookingCreated(timeSlot string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, timeSlot)
}

func (f *fakeMetrics) BookingConflict(timeSlot string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts = append(f.conflicts, timeSlot)
}

func (f *fakeMetrics) NotificationFailure() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notificationFailures++
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var (
	beforeCutoff = time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	testCutoff   = time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		PassengerName:       "Mere Wilson",
		PassengerPhone:      "0211234567",
		PassengerEmail:      "Mere.Wilson@Example.com",
		PickupAddress:       "12 Tui Street, Hamilton",
		DestinationCategory: "supermarket",
		DestinationAddress:  "Countdown, Victoria Street",
		TimeSlot:            "10:30",
		NumPassengers:       2,
	}
}

func newTestUseCase(repo *fakeRepo, refs []string, notifier *fakeNotifier, m *fakeMetrics) *UseCase {
	uc := NewUseCase(repo, &fakeRefGenerator{refs: refs}, notifier, m, testCutoff, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: beforeCutoff}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	notifier := newFakeNotifier(nil)
	m := &fakeMetrics{}
	uc := newTestUseCase(repo, []string{"FR-ABC234"}, notifier, m)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "FR-ABC234", resp.BookingReference)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, types.TimeString("10:30"), resp.TimeSlot)

	// Email нормализуется к нижнему регистру перед сохранением
	assert.Equal(t, "mere.wilson@example.com", resp.PassengerEmail)

	// Письма уходят асинхронно после успешной вставки
	select {
	case sent := <-notifier.sent:
		assert.Equal(t, "FR-ABC234", sent.BookingReference)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
	}

	assert.Equal(t, []string{"10:30"}, m.created)
	assert.Empty(t, m.conflicts)
}

func TestUseCase_Execute_SlotTakenAdvisory(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.confirmedSlots["10:30"] = true
	m := &fakeMetrics{}
	uc := newTestUseCase(repo, []string{"FR-ABC234"}, newFakeNotifier(nil), m)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, resp)
	assert.Equal(t, []string{"10:30"}, m.conflicts)
}

func TestUseCase_Execute_SlotTakenAtInsert(t *testing.T) {
	t.Parallel()

	// Предварительная проверка проходит, но вставку отклоняет
	// ограничение БД — исход для клиента тот же
	repo := newFakeRepo()
	repo.createErr = bookingRepo.ErrSlotTaken
	m := &fakeMetrics{}
	uc := newTestUseCase(repo, []string{"FR-ABC234"}, newFakeNotifier(nil), m)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, []string{"10:30"}, m.conflicts)
}

func TestUseCase_Execute_ReferenceCollisionRetried(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.usedReferences["FR-ABC234"] = true
	notifier := newFakeNotifier(nil)
	uc := newTestUseCase(repo, []string{"FR-ABC234", "FR-XYZ789"}, notifier, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "FR-XYZ789", resp.BookingReference)
}

func TestUseCase_Execute_BookingClosed(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(newFakeRepo(), []string{"FR-ABC234"}, newFakeNotifier(nil), &fakeMetrics{})
	uc.timeProvider = &fixedTimeProvider{now: testCutoff} // ровно в момент закрытия

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.PassengerName = "" }},
		{name: "name too short", mutate: func(r *Request) { r.PassengerName = "M" }},
		{name: "name too long", mutate: func(r *Request) {
			r.PassengerName = strings.Repeat("a", domain.MaxPassengerNameLength+1)
		}},
		{name: "pickup address too short", mutate: func(r *Request) { r.PickupAddress = "12" }},
		{name: "destination address too long", mutate: func(r *Request) {
			r.DestinationAddress = strings.Repeat("a", domain.MaxAddressLength+1)
		}},
		{name: "special requirements too long", mutate: func(r *Request) {
			long := strings.Repeat("a", domain.MaxSpecialRequirementsLength+1)
			r.SpecialRequirements = &long
		}},
		{name: "missing phone", mutate: func(r *Request) { r.PassengerPhone = "" }},
		{name: "missing email", mutate: func(r *Request) { r.PassengerEmail = "" }},
		{name: "missing pickup address", mutate: func(r *Request) { r.PickupAddress = "" }},
		{name: "missing destination address", mutate: func(r *Request) { r.DestinationAddress = "" }},
		{name: "unknown category", mutate: func(r *Request) { r.DestinationCategory = "casino" }},
		{name: "empty time slot", mutate: func(r *Request) { r.TimeSlot = "" }},
		{name: "slot not in catalog", mutate: func(r *Request) { r.TimeSlot = "11:00" }},
		{name: "zero passengers", mutate: func(r *Request) { r.NumPassengers = 0 }},
		{name: "too many passengers", mutate: func(r *Request) { r.NumPassengers = 9 }},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := newTestUseCase(newFakeRepo(), []string{"FR-ABC234"}, newFakeNotifier(nil), &fakeMetrics{})

			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	t.Parallel()

	notifier := newFakeNotifier(errors.New("resend unavailable"))
	m := &fakeMetrics{}
	uc := newTestUseCase(newFakeRepo(), []string{"FR-ABC234"}, notifier, m)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "FR-ABC234", resp.BookingReference)

	select {
	case <-notifier.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
	}

	// Сбой доставки учитывается только в метриках
	assert.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.notificationFailures == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	t.Parallel()

	// Оба запроса могут пройти предварительную проверку, но вставка
	// атомарна: ровно один выигрывает, второй получает "слот занят"
	repo := newFakeRepo()
	notifier := newFakeNotifier(nil)
	uc := newTestUseCase(repo, []string{"FR-AAA222", "FR-BBB333"}, notifier, &fakeMetrics{})

	var wg sync.WaitGroup
	results := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range results {
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
}
