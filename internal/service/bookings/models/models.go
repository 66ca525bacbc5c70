package models

import (
	"time"

	"github.com/festive-rides/booking-service/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования.
// Пара (код, email) — вся модель доступа к отмене: отменить может любой,
// кто знает код бронирования и email, с которого бронировали.
type CancelBookingRequest struct {
	BookingReference   string
	PassengerEmail     string
	CancellationReason *string
}

// Response модели

// CancelBookingResponse данные отмененного бронирования для отображения
type CancelBookingResponse struct {
	BookingReference string
	PassengerName    string
	TimeSlot         string
	TimeSlotLabel    string
}

// BookingDetails полные данные бронирования для страницы подтверждения
type BookingDetails struct {
	ID                  int64
	PassengerName       string
	PassengerPhone      string
	PassengerEmail      string
	TimeSlot            string
	TimeSlotLabel       string
	PickupAddress       string
	DestinationCategory string
	DestinationAddress  string
	NumPassengers       int
	SpecialRequirements *string
	BookingReference    string
	Status              string
	CreatedAt           time.Time
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingDetails {
	if b == nil {
		return nil
	}

	return &BookingDetails{
		ID:                  b.ID,
		PassengerName:       b.PassengerName,
		PassengerPhone:      b.PassengerPhone,
		PassengerEmail:      b.PassengerEmail,
		TimeSlot:            b.TimeSlot.String(),
		TimeSlotLabel:       domain.FormatTimeSlot(b.TimeSlot),
		PickupAddress:       b.PickupAddress,
		DestinationCategory: string(b.DestinationCategory),
		DestinationAddress:  b.DestinationAddress,
		NumPassengers:       b.NumPassengers,
		SpecialRequirements: b.SpecialRequirements,
		BookingReference:    b.BookingReference,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt,
	}
}
