package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/festive-rides/booking-service/internal/domain"
	bookingRepo "github.com/festive-rides/booking-service/internal/infra/storage/booking"
	"github.com/festive-rides/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями.
// Доступ к бронированию везде определяется парой (код, email).
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByReference находит подтвержденное бронирование по паре (код, email).
// Используется страницей подтверждения; любой промах возвращает единый
// ErrBookingNotFound.
func (s *Service) GetByReference(ctx context.Context, reference, email string) (*models.BookingDetails, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	if reference == "" || email == "" {
		return nil, fmt.Errorf("%w: booking reference and email are required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.FindByReference(ctx, reference, email)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: no confirmed booking for reference=%s", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel переводит подтвержденное бронирование в cancelled одним UPDATE.
// Обратного перехода нет; освобождение слота происходит неявно — карта
// доступности всегда вычисляется от текущих подтвержденных бронирований.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking reference=%s", req.BookingReference)

	if req.BookingReference == "" || req.PassengerEmail == "" {
		return nil, fmt.Errorf("%w: booking reference and email are required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.CancelByReference(ctx, req.BookingReference, req.PassengerEmail, req.CancellationReason)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: no confirmed booking for reference=%s", req.BookingReference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", req.BookingReference, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking id=%d reference=%s slot=%s",
		booking.ID, booking.BookingReference, booking.TimeSlot)
	s.metrics.BookingCancelled()

	return &models.CancelBookingResponse{
		BookingReference: booking.BookingReference,
		PassengerName:    booking.PassengerName,
		TimeSlot:         booking.TimeSlot.String(),
		TimeSlotLabel:    domain.FormatTimeSlot(booking.TimeSlot),
	}, nil
}
