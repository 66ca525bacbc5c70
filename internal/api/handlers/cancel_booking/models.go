package cancel_booking

import (
	"github.com/festive-rides/booking-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	BookingReference   string  `json:"booking_reference" validate:"required"`
	PassengerEmail     string  `json:"passenger_email" validate:"required,email"`
	CancellationReason *string `json:"cancellation_reason,omitempty" validate:"omitempty,max=500"`
}

// CancelledBookingResponse данные отмененного бронирования
type CancelledBookingResponse struct {
	BookingReference string `json:"booking_reference"`
	PassengerName    string `json:"passenger_name"`
	TimeSlot         string `json:"time_slot"`
	TimeSlotLabel    string `json:"time_slot_label"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Booking *CancelledBookingResponse `json:"booking"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		BookingReference:   r.BookingReference,
		PassengerEmail:     r.PassengerEmail,
		CancellationReason: r.CancellationReason,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CancelBookingResponse) *CancelBookingResponse {
	return &CancelBookingResponse{
		Success: true,
		Message: "Booking cancelled successfully",
		Booking: &CancelledBookingResponse{
			BookingReference: resp.BookingReference,
			PassengerName:    resp.PassengerName,
			TimeSlot:         resp.TimeSlot,
			TimeSlotLabel:    resp.TimeSlotLabel,
		},
	}
}
