package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда подтвержденное бронирование
	// не найдено по паре (код, email). Неверный код, неверный email и уже
	// отмененное бронирование намеренно неразличимы, чтобы не раскрывать,
	// какое из полей не совпало и существует ли код вообще.
	ErrBookingNotFound = errors.New("bookings: booking not found or already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
