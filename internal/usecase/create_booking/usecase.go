package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/festive-rides/booking-service/internal/domain"
	bookingRepo "github.com/festive-rides/booking-service/internal/infra/storage/booking"
)

const (
	// maxReferenceAttempts число попыток вставки при коллизии кода
	// бронирования. Коллизия слота не повторяется никогда.
	maxReferenceAttempts = 3

	// notifyTimeout таймаут на отправку подтверждающих писем
	notifyTimeout = 30 * time.Second
)

// UseCase use case создания бронирования.
// Гарантирует эксклюзивность слота в два шага: быстрая предварительная
// проверка и авторитетный частичный уникальный индекс при вставке.
type UseCase struct {
	bookingRepo  BookingRepository
	refGenerator ReferenceGenerator
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	cutoff       time.Time
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cutoff — момент закрытия бронирования (полночь после дня обслуживания).
func NewUseCase(
	bookingRepo BookingRepository,
	refGenerator ReferenceGenerator,
	notifier Notifier,
	metrics Metrics,
	cutoff time.Time,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		refGenerator: refGenerator,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		cutoff:       cutoff,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%s, passengers=%d", req.TimeSlot, req.NumPassengers)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что бронирование ещё открыто.
	// Чистая функция от (текущее время, настроенный cutoff) — никакого
	// глобального изменяемого состояния.
	if !uc.timeProvider.Now().Before(uc.cutoff) {
		uc.logger.Warn("CreateBooking: bookings closed, cutoff=%s", uc.cutoff.Format(time.RFC3339))
		return nil, ErrBookingClosed
	}

	// 3. Предварительная проверка занятости слота. Это оптимизация для
	// быстрого отказа без генерации кода и попытки вставки; авторитетная
	// проверка — ограничение БД на шаге 4.
	taken, err := uc.bookingRepo.SlotTaken(ctx, req.TimeSlot)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check slot %s: %v", req.TimeSlot, err)
		return nil, fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
	}
	if taken {
		uc.logger.Warn("CreateBooking: slot %s already taken (advisory check)", req.TimeSlot)
		uc.metrics.BookingConflict(req.TimeSlot.String())
		return nil, ErrSlotNotAvailable
	}

	booking := &domain.Booking{
		PassengerName:       strings.TrimSpace(req.PassengerName),
		PassengerPhone:      strings.TrimSpace(req.PassengerPhone),
		PassengerEmail:      strings.ToLower(strings.TrimSpace(req.PassengerEmail)),
		TimeSlot:            req.TimeSlot,
		PickupAddress:       strings.TrimSpace(req.PickupAddress),
		DestinationCategory: domain.DestinationCategory(req.DestinationCategory),
		DestinationAddress:  strings.TrimSpace(req.DestinationAddress),
		NumPassengers:       req.NumPassengers,
		SpecialRequirements: req.SpecialRequirements,
		Status:              domain.StatusConfirmed,
	}

	// 4. Генерируем код и вставляем. Два конкурентных запроса на один
	// слот могут оба пройти шаг 3; тогда проигравшую вставку отклонит
	// частичный уникальный индекс и она получит тот же исход "слот
	// занят". Коллизия кода бронирования повторяется со свежим кодом.
	created, err := uc.insertWithReference(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			uc.logger.Warn("CreateBooking: slot %s taken at insert (constraint)", req.TimeSlot)
			uc.metrics.BookingConflict(req.TimeSlot.String())
			return nil, ErrSlotNotAvailable
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: created booking id=%d reference=%s slot=%s",
		created.ID, created.BookingReference, created.TimeSlot)
	uc.metrics.BookingCreated(created.TimeSlot.String())

	// 5. Отправляем письма пассажиру и администратору после коммита.
	// Fire-and-forget: клиент получает успех сразу после сохранения,
	// сбой доставки только логируется и учитывается в метриках.
	uc.dispatchNotification(created)

	return &Response{
		ID:               created.ID,
		BookingReference: created.BookingReference,
		PassengerName:    created.PassengerName,
		PassengerEmail:   created.PassengerEmail,
		TimeSlot:         created.TimeSlot,
		Status:           string(created.Status),
		CreatedAt:        created.CreatedAt,
	}, nil
}

// insertWithReference вставляет бронирование, перегенерируя код при
// коллизии booking_reference
func (uc *UseCase) insertWithReference(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var lastErr error

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		reference, err := uc.refGenerator.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate booking reference: %w", err)
		}
		booking.BookingReference = reference

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, bookingRepo.ErrReferenceTaken) {
			return nil, err
		}

		uc.logger.Warn("CreateBooking: reference %s collided, attempt %d/%d",
			reference, attempt, maxReferenceAttempts)
		lastErr = err
	}

	return nil, fmt.Errorf("reference collision retries exhausted: %w", lastErr)
}

func (uc *UseCase) dispatchNotification(booking *domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.SendBookingConfirmed(ctx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to send confirmation emails for %s: %v",
				booking.BookingReference, err)
			uc.metrics.NotificationFailure()
		}
	}()
}
