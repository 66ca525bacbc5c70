package check_availability

import (
	"context"
	"fmt"

	"github.com/festive-rides/booking-service/internal/domain"
	"github.com/festive-rides/booking-service/pkg/types"
)

// UseCase use case для получения карты доступности слотов.
// Доступность всегда вычисляется от текущего состояния подтвержденных
// бронирований; отдельного состояния "свободен/занят" нигде не хранится.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности слотов
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Читаем time_slot всех подтвержденных бронирований.
	// Значения нормализованы к "HH:MM" на уровне сканирования, поэтому
	// хранимое "10:30:00" корректно помечает слот "10:30" занятым.
	confirmedSlots, err := uc.bookingRepo.ListConfirmedSlots(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list confirmed slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list confirmed slots: %v", ErrInternal, err)
	}

	booked := make(map[types.TimeString]struct{}, len(confirmedSlots))
	for _, slot := range confirmedSlots {
		booked[slot] = struct{}{}
	}

	// 2. Проецируем занятость на каталог слотов
	slots := make(map[string]SlotStatus, len(domain.TimeSlots))
	totalAvailable := 0

	for _, slot := range domain.TimeSlots {
		_, isBooked := booked[slot.Time]
		slots[slot.Time.String()] = SlotStatus{
			Available: !isBooked,
			Booked:    isBooked,
		}
		if !isBooked {
			totalAvailable++
		}
	}

	uc.logger.Info("CheckAvailability: %d of %d slots available", totalAvailable, len(domain.TimeSlots))

	return &Response{
		Slots:          slots,
		TotalAvailable: totalAvailable,
		LastUpdated:    uc.timeProvider.Now(),
	}, nil
}
