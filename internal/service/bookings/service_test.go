package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festive-rides/booking-service/internal/domain"
	bookingRepo "github.com/festive-rides/booking-service/internal/infra/storage/booking"
	"github.com/festive-rides/booking-service/internal/service/bookings/models"
)

// fakeRepo находит бронирование только по точной паре (код, email),
// как это делает SQL запрос репозитория
type fakeRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeRepo) match(reference, email string) bool {
	return f.booking != nil &&
		f.booking.BookingReference == reference &&
		strings.EqualFold(f.booking.PassengerEmail, email) &&
		f.booking.Status == domain.StatusConfirmed
}

func (f *fakeRepo) FindByReference(ctx context.Context, reference, email string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.match(reference, email) {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeRepo) CancelByReference(ctx context.Context, reference, email string, reason *string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.match(reference, email) {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cancelled := *f.booking
	cancelled.Status = domain.StatusCancelled
	cancelled.CancellationReason = reason
	return &cancelled, nil
}

type fakeMetrics struct {
	cancelled int
}

func (f *fakeMetrics) BookingCancelled() {
	f.cancelled++
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:                  42,
		PassengerName:       "Mere Wilson",
		PassengerPhone:      "0211234567",
		PassengerEmail:      "mere.wilson@example.com",
		TimeSlot:            "10:30",
		PickupAddress:       "12 Tui Street, Hamilton",
		DestinationCategory: domain.DestinationSupermarket,
		DestinationAddress:  "Countdown, Victoria Street",
		NumPassengers:       2,
		BookingReference:    "FR-ABC234",
		Status:              domain.StatusConfirmed,
		CreatedAt:           time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_GetByReference(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{booking: confirmedBooking()}, &fakeMetrics{}, noopLogger{})

	details, err := svc.GetByReference(context.Background(), "FR-ABC234", "mere.wilson@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(42), details.ID)
	assert.Equal(t, "FR-ABC234", details.BookingReference)
	assert.Equal(t, "10:30", details.TimeSlot)
	assert.Equal(t, "10:30 AM", details.TimeSlotLabel)
	assert.Equal(t, "confirmed", details.Status)
}

func TestService_GetByReference_UniformNotFound(t *testing.T) {
	t.Parallel()

	// Неверный код, неверный email и отмененное бронирование обязаны
	// давать один и тот же результат
	cancelled := confirmedBooking()
	cancelled.Status = domain.StatusCancelled

	testCases := []struct {
		name      string
		booking   *domain.Booking
		reference string
		email     string
	}{
		{name: "wrong reference", booking: confirmedBooking(), reference: "FR-ZZZ999", email: "mere.wilson@example.com"},
		{name: "wrong email", booking: confirmedBooking(), reference: "FR-ABC234", email: "other@example.com"},
		{name: "already cancelled", booking: cancelled, reference: "FR-ABC234", email: "mere.wilson@example.com"},
		{name: "no bookings at all", booking: nil, reference: "FR-ABC234", email: "mere.wilson@example.com"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(&fakeRepo{booking: tc.booking}, &fakeMetrics{}, noopLogger{})

			_, err := svc.GetByReference(context.Background(), tc.reference, tc.email)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBookingNotFound)
		})
	}
}

func TestService_GetByReference_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{}, &fakeMetrics{}, noopLogger{})

	_, err := svc.GetByReference(context.Background(), "", "mere@example.com")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByReference(context.Background(), "FR-ABC234", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()

	m := &fakeMetrics{}
	svc := NewService(&fakeRepo{booking: confirmedBooking()}, m, noopLogger{})

	reason := "plans changed"
	resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingReference:   "FR-ABC234",
		PassengerEmail:     "mere.wilson@example.com",
		CancellationReason: &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, "FR-ABC234", resp.BookingReference)
	assert.Equal(t, "Mere Wilson", resp.PassengerName)
	assert.Equal(t, "10:30", resp.TimeSlot)
	assert.Equal(t, "10:30 AM", resp.TimeSlotLabel)
	assert.Equal(t, 1, m.cancelled)
}

func TestService_Cancel_UniformNotFound(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		reference string
		email     string
	}{
		{name: "wrong reference", reference: "FR-ZZZ999", email: "mere.wilson@example.com"},
		{name: "wrong email", reference: "FR-ABC234", email: "other@example.com"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := &fakeMetrics{}
			svc := NewService(&fakeRepo{booking: confirmedBooking()}, m, noopLogger{})

			_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
				BookingReference: tc.reference,
				PassengerEmail:   tc.email,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBookingNotFound)
			assert.Zero(t, m.cancelled)
		})
	}
}

func TestService_Cancel_RepositoryError(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, &fakeMetrics{}, noopLogger{})

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		BookingReference: "FR-ABC234",
		PassengerEmail:   "mere.wilson@example.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
