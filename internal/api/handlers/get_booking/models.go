package get_booking

import (
	"time"

	"github.com/festive-rides/booking-service/internal/service/bookings/models"
)

// BookingDetailsResponse HTTP response model
type BookingDetailsResponse struct {
	ID                  int64   `json:"id"`
	BookingReference    string  `json:"booking_reference"`
	PassengerName       string  `json:"passenger_name"`
	PassengerPhone      string  `json:"passenger_phone"`
	PassengerEmail      string  `json:"passenger_email"`
	TimeSlot            string  `json:"time_slot"`
	TimeSlotLabel       string  `json:"time_slot_label"`
	PickupAddress       string  `json:"pickup_address"`
	DestinationCategory string  `json:"destination_category"`
	DestinationAddress  string  `json:"destination_address"`
	NumPassengers       int     `json:"num_passengers"`
	SpecialRequirements *string `json:"special_requirements,omitempty"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"created_at"`
}

// FromServiceResponse конвертирует DTO сервиса в HTTP response
func FromServiceResponse(details *models.BookingDetails) *BookingDetailsResponse {
	return &BookingDetailsResponse{
		ID:                  details.ID,
		BookingReference:    details.BookingReference,
		PassengerName:       details.PassengerName,
		PassengerPhone:      details.PassengerPhone,
		PassengerEmail:      details.PassengerEmail,
		TimeSlot:            details.TimeSlot,
		TimeSlotLabel:       details.TimeSlotLabel,
		PickupAddress:       details.PickupAddress,
		DestinationCategory: details.DestinationCategory,
		DestinationAddress:  details.DestinationAddress,
		NumPassengers:       details.NumPassengers,
		SpecialRequirements: details.SpecialRequirements,
		Status:              details.Status,
		CreatedAt:           details.CreatedAt.Format(time.RFC3339),
	}
}
