package create_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/festive-rides/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Это защитная проверка семантики; карта ошибок по полям для клиента
// формируется валидатором на HTTP-слое. Границы длины — доменные
// константы, те же, что стоят в validator тегах HTTP-моделей.
func validateRequest(req *Request) error {
	if req.PassengerName == "" {
		return fmt.Errorf("%w: passenger name is required", ErrInvalidInput)
	}

	if n := utf8.RuneCountInString(req.PassengerName); n < domain.MinPassengerNameLength || n > domain.MaxPassengerNameLength {
		return fmt.Errorf("%w: passenger name must be between %d and %d characters",
			ErrInvalidInput, domain.MinPassengerNameLength, domain.MaxPassengerNameLength)
	}

	if req.PassengerPhone == "" {
		return fmt.Errorf("%w: passenger phone is required", ErrInvalidInput)
	}

	if req.PassengerEmail == "" {
		return fmt.Errorf("%w: passenger email is required", ErrInvalidInput)
	}

	if err := validateAddress("pickup address", req.PickupAddress); err != nil {
		return err
	}

	if err := validateAddress("destination address", req.DestinationAddress); err != nil {
		return err
	}

	if !domain.IsValidDestinationCategory(req.DestinationCategory) {
		return fmt.Errorf("%w: unknown destination category %q", ErrInvalidInput, req.DestinationCategory)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: time slot is required", ErrInvalidInput)
	}

	// Слот обязан существовать в каталоге — единственном источнике
	// истины об идентичности слотов
	if !domain.IsValidTimeSlot(req.TimeSlot.String()) {
		return fmt.Errorf("%w: time slot %q is not in the catalog", ErrInvalidInput, req.TimeSlot)
	}

	if req.NumPassengers < domain.MinPassengers || req.NumPassengers > domain.MaxPassengers {
		return fmt.Errorf("%w: num passengers must be between %d and %d",
			ErrInvalidInput, domain.MinPassengers, domain.MaxPassengers)
	}

	if req.SpecialRequirements != nil &&
		utf8.RuneCountInString(*req.SpecialRequirements) > domain.MaxSpecialRequirementsLength {
		return fmt.Errorf("%w: special requirements must be at most %d characters",
			ErrInvalidInput, domain.MaxSpecialRequirementsLength)
	}

	return nil
}

func validateAddress(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if n := utf8.RuneCountInString(value); n < domain.MinAddressLength || n > domain.MaxAddressLength {
		return fmt.Errorf("%w: %s must be between %d and %d characters",
			ErrInvalidInput, field, domain.MinAddressLength, domain.MaxAddressLength)
	}
	return nil
}
