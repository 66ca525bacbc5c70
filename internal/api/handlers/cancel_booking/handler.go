package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/festive-rides/booking-service/internal/api/handlers"
	"github.com/festive-rides/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "Invalid request body"

	// msgNotFound единое сообщение для всех промахов: неверный код,
	// неверный email и уже отмененное бронирование неразличимы
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

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.ValidateStruct(&req); details != nil {
		h.logger.Warn("POST /bookings/cancel - Validation failed: %d field(s)", len(details))
		handlers.RespondValidationError(w, details)
		return
	}

	serviceReq := req.ToServiceRequest()

	result, err := h.service.Cancel(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: reference=%s", req.BookingReference)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: reference=%s, error=%v",
				req.BookingReference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("POST /bookings/cancel - Booking cancelled successfully: reference=%s",
		result.BookingReference)
	handlers.RespondJSON(w, http.StatusOK, response)
}
