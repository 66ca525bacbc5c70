package create_booking

import (
	"time"

	"github.com/festive-rides/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования.
// Полевая валидация (формат, длины, enum) выполняется на HTTP-слое;
// usecase дополнительно проверяет семантику перед обращением к БД.
type Request struct {
	PassengerName       string
	PassengerPhone      string
	PassengerEmail      string
	PickupAddress       string
	DestinationCategory string
	DestinationAddress  string
	TimeSlot            types.TimeString
	NumPassengers       int
	SpecialRequirements *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	BookingReference string
	PassengerName    string
	PassengerEmail   string
	TimeSlot         types.TimeString
	Status           string
	CreatedAt        time.Time
}
