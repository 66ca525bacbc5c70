package create_booking

import (
	"time"

	createBooking "github.com/festive-rides/booking-service/internal/usecase/create_booking"
	"github.com/festive-rides/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PassengerName       string  `json:"passenger_name" validate:"required,min=2,max=100"`
	PassengerPhone      string  `json:"passenger_phone" validate:"required,nz_phone"`
	PassengerEmail      string  `json:"passenger_email" validate:"required,email"`
	PickupAddress       string  `json:"pickup_address" validate:"required,min=5,max=300"`
	DestinationCategory string  `json:"destination_category" validate:"required,destination_category"`
	DestinationAddress  string  `json:"destination_address" validate:"required,min=5,max=300"`
	TimeSlot            string  `json:"time_slot" validate:"required,time_slot"`
	NumPassengers       int     `json:"num_passengers" validate:"required,min=1,max=8"`
	SpecialRequirements *string `json:"special_requirements,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"booking_reference"`
	PassengerName    string `json:"passenger_name"`
	PassengerEmail   string `json:"passenger_email"`
	TimeSlot         string `json:"time_slot"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

// CreateBookingResponse обертка успешного ответа
type CreateBookingResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим время слота (валидатор уже проверил формат)
	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PassengerName:       r.PassengerName,
		PassengerPhone:      r.PassengerPhone,
		PassengerEmail:      r.PassengerEmail,
		PickupAddress:       r.PickupAddress,
		DestinationCategory: r.DestinationCategory,
		DestinationAddress:  r.DestinationAddress,
		TimeSlot:            timeSlot,
		NumPassengers:       r.NumPassengers,
		SpecialRequirements: r.SpecialRequirements,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Booking: &BookingResponse{
			ID:               resp.ID,
			BookingReference: resp.BookingReference,
			PassengerName:    resp.PassengerName,
			PassengerEmail:   resp.PassengerEmail,
			TimeSlot:         resp.TimeSlot.String(),
			Status:           resp.Status,
			CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
