package create_booking

import (
	"errors"
	"net/http"

	"github.com/festive-rides/booking-service/internal/api/handlers"
	createBooking "github.com/festive-rides/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidTimeSlot    = "Please select a valid time slot"
	msgSlotTaken          = "This time slot has just been booked by someone else. Please select another time."
	msgBookingClosed      = "Bookings are closed. The service day has passed."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Полевая валидация: формат, длины, enum значения
	if details := handlers.ValidateStruct(&req); details != nil {
		h.logger.Warn("POST /bookings - Validation failed: %d field(s)", len(details))
		handlers.RespondValidationError(w, details)
		return
	}

	// Конвертируем HTTP запрос в модель use case
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: time_slot=%s", req.TimeSlot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrBookingClosed):
			h.logger.Warn("POST /bookings - Bookings closed: time_slot=%s", req.TimeSlot)
			handlers.RespondBadRequest(w, msgBookingClosed)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: time_slot=%s, error=%v",
				req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, time_slot=%s",
		result.ID, result.BookingReference, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
