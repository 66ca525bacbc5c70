package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/festive-rides/booking-service/internal/domain"
	"github.com/festive-rides/booking-service/pkg/psqlbuilder"
	"github.com/festive-rides/booking-service/pkg/types"
)

// Имена ограничений из migrations/001_create_bookings.sql.
// По ним различаются конфликт слота и коллизия кода бронирования.
const (
	constraintConfirmedSlot = "bookings_confirmed_time_slot_idx"
	constraintReference     = "bookings_booking_reference_key"
)

// pgUniqueViolation код ошибки unique_violation в PostgreSQL
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"passenger_name",
	"passenger_phone",
	"passenger_email",
	"time_slot",
	"pickup_address",
	"destination_category",
	"destination_address",
	"num_passengers",
	"special_requirements",
	"booking_reference",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новое подтвержденное бронирование.
// Частичный уникальный индекс по time_slot (WHERE status='confirmed')
// гарантирует, что из двух конкурентных вставок на один слот закоммитится
// ровно одна; проигравшая получает ErrSlotTaken. Коллизия кода
// бронирования возвращается отдельной ошибкой ErrReferenceTaken.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"passenger_name",
			"passenger_phone",
			"passenger_email",
			"time_slot",
			"pickup_address",
			"destination_category",
			"destination_address",
			"num_passengers",
			"special_requirements",
			"booking_reference",
			"status",
		).
		Values(
			b.PassengerName,
			b.PassengerPhone,
			b.PassengerEmail,
			b.TimeSlot,
			b.PickupAddress,
			b.DestinationCategory,
			b.DestinationAddress,
			b.NumPassengers,
			b.SpecialRequirements,
			b.BookingReference,
			b.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		if uniqueErr := translateUniqueViolation(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// SlotTaken проверяет, есть ли подтвержденное бронирование на слот.
// Это предварительная проверка для быстрого отказа; авторитетная
// проверка выполняется ограничением БД при вставке.
func (r *Repository) SlotTaken(ctx context.Context, slot types.TimeString) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"time_slot": slot,
			"status":    domain.StatusConfirmed,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: SlotTaken - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: SlotTaken - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// ListConfirmedSlots возвращает time_slot значения всех подтвержденных
// бронирований. Нормализация "HH:MM:SS" -> "HH:MM" выполняется при
// сканировании (types.TimeString.Scan).
func (r *Repository) ListConfirmedSlots(ctx context.Context) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("time_slot").
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: ListConfirmedSlots - scan time_slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// FindByReference находит подтвержденное бронирование по паре
// (booking_reference, passenger_email). Email сравнивается без учета
// регистра. Любое несовпадение возвращает единый ErrBookingNotFound.
func (r *Repository) FindByReference(ctx context.Context, reference, email string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booking_reference": reference,
			"status":            domain.StatusConfirmed,
		}).
		Where(squirrel.Expr("lower(passenger_email) = lower(?)", email)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByReference - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByReference - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// CancelByReference переводит подтвержденное бронирование в cancelled
// одним UPDATE по паре (booking_reference, passenger_email). Нулевое
// число строк означает неверный код, неверный email или уже отмененное
// бронирование — все три случая неразличимы для вызывающей стороны.
func (r *Repository) CancelByReference(ctx context.Context, reference, email string, reason *string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"booking_reference": reference,
			"status":            domain.StatusConfirmed,
		}).
		Where(squirrel.Expr("lower(passenger_email) = lower(?)", email)).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CancelByReference - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CancelByReference - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// rowScanner общий интерфейс для *sql.Row
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		createdAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.PassengerName,
		&booking.PassengerPhone,
		&booking.PassengerEmail,
		&booking.TimeSlot,
		&booking.PickupAddress,
		&booking.DestinationCategory,
		&booking.DestinationAddress,
		&booking.NumPassengers,
		&booking.SpecialRequirements,
		&booking.BookingReference,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// translateUniqueViolation транслирует нарушение уникальности в доменную
// ошибку по имени ограничения; для прочих ошибок возвращает nil
func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintConfirmedSlot:
		return ErrSlotTaken
	case constraintReference:
		return ErrReferenceTaken
	default:
		return fmt.Errorf("%w: unexpected unique violation on %q", ErrExecQuery, pqErr.Constraint)
	}
}
