package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/festive-rides/booking-service/internal/service/bookings"
	"github.com/festive-rides/booking-service/internal/service/bookings/models"
)

type fakeService struct {
	details *models.BookingDetails
	err     error
}

func (f *fakeService) GetByReference(ctx context.Context, reference, email string) (*models.BookingDetails, error) {
	return f.details, f.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{reference}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	details := &models.BookingDetails{
		ID:                  42,
		PassengerName:       "Mere Wilson",
		PassengerPhone:      "0211234567",
		PassengerEmail:      "mere.wilson@example.com",
		TimeSlot:            "10:30",
		TimeSlotLabel:       "10:30 AM",
		PickupAddress:       "12 Tui Street, Hamilton",
		DestinationCategory: "supermarket",
		DestinationAddress:  "Countdown, Victoria Street",
		NumPassengers:       2,
		BookingReference:    "FR-ABC234",
		Status:              "confirmed",
		CreatedAt:           time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		url            string
		service        *fakeService
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:           "success",
			url:            "/api/v1/bookings/FR-ABC234?email=mere.wilson@example.com",
			service:        &fakeService{details: details},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"booking_reference":"FR-ABC234"`)
				assert.Contains(t, body, `"time_slot_label":"10:30 AM"`)
				assert.Contains(t, body, `"status":"confirmed"`)
			},
		},
		{
			name:           "missing email",
			url:            "/api/v1/bookings/FR-ABC234",
			service:        &fakeService{details: details},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email address is required")
			},
		},
		{
			name: "malformed reference gets uniform 404",
			url:  "/api/v1/bookings/NOT-A-REF?email=mere.wilson@example.com",
			// Сервис не должен вызываться вовсе
			service:        &fakeService{err: errors.New("must not be called")},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Booking not found or already cancelled")
			},
		},
		{
			name:           "not found",
			url:            "/api/v1/bookings/FR-ZZZ999?email=mere.wilson@example.com",
			service:        &fakeService{err: bookings.ErrBookingNotFound},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Booking not found or already cancelled")
			},
		},
		{
			name:           "internal error",
			url:            "/api/v1/bookings/FR-ABC234?email=mere.wilson@example.com",
			service:        &fakeService{err: errors.New("db down")},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "db down")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newRouter(NewHandler(tc.service, noopLogger{}))

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rec.Body.String())
			}
		})
	}
}
