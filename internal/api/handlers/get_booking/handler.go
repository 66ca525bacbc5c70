package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/festive-rides/booking-service/internal/api/handlers"
	"github.com/festive-rides/booking-service/internal/service/bookings"
	"github.com/festive-rides/booking-service/pkg/refgen"
)

const (
	msgMissingEmail = "Email address is required"

	// msgNotFound единое сообщение: существование кода не раскрывается
	msgNotFound = "Booking not found or already cancelled. Please check your booking reference and email address."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{reference}
// Query params: email (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reference := vars["reference"]

	// Код с невозможным форматом не может существовать — отвечаем тем же
	// 404, что и на обычный промах
	if !refgen.IsValid(reference) {
		h.logger.Warn("GET /bookings/{reference} - Malformed reference: %s", reference)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /bookings/{reference} - Missing email: reference=%s", reference)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	booking, err := h.service.GetByReference(r.Context(), reference, email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{reference} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /bookings/{reference} - Failed to get booking: reference=%s, error=%v",
				reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(booking)

	h.logger.Info("GET /bookings/{reference} - Booking retrieved successfully: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, response)
}
