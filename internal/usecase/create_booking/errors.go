package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotNotAvailable возвращается, когда на выбранный слот уже есть
	// подтвержденное бронирование. Один и тот же результат для обоих
	// путей обнаружения: предварительной проверки и нарушения
	// ограничения при вставке.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrBookingClosed возвращается после окончания дня обслуживания
	ErrBookingClosed = errors.New("create_booking: bookings are closed for this service date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
