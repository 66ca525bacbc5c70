package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда на слот уже есть подтвержденное
	// бронирование. Источник — частичный уникальный индекс по time_slot
	// (WHERE status='confirmed'), он же главный арбитр при гонке вставок.
	ErrSlotTaken = errors.New("booking.repository: slot already has a confirmed booking")

	// ErrReferenceTaken возвращается при коллизии кода бронирования.
	// Отличается от ErrSlotTaken, чтобы вызывающая сторона могла
	// перегенерировать код и повторить вставку.
	ErrReferenceTaken = errors.New("booking.repository: booking reference already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
