package create_booking

import (
	"context"
	"time"

	"github.com/festive-rides/booking-service/internal/domain"
	"github.com/festive-rides/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	SlotTaken(ctx context.Context, slot types.TimeString) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ReferenceGenerator интерфейс генератора кодов бронирования
type ReferenceGenerator interface {
	Generate() (string, error)
}

// Notifier интерфейс отправки подтверждающих писем.
// Вызывается после успешной вставки в режиме fire-and-forget: ошибка
// доставки логируется, но никогда не влияет на результат бронирования.
type Notifier interface {
	SendBookingConfirmed(ctx context.Context, booking *domain.Booking) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	BookingCreated(timeSlot string)
	BookingConflict(timeSlot string)
	NotificationFailure()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
