package bookings

import (
	"context"

	"github.com/festive-rides/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindByReference(ctx context.Context, reference, email string) (*domain.Booking, error)
	CancelByReference(ctx context.Context, reference, email string, reason *string) (*domain.Booking, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
