package handlers

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/festive-rides/booking-service/internal/domain"
)

// nzPhonePattern поддерживает форматы 021234567, +6421234567, 091234567 и т.п.
var nzPhonePattern = regexp.MustCompile(`^(?:\+?64|0)(?:[2-9]\d{7,9})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// В ошибках используем имена полей из json тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Кастомные правила сверяются с доменным каталогом — единственным
	// источником истины о слотах и категориях
	_ = v.RegisterValidation("nz_phone", func(fl validator.FieldLevel) bool {
		return nzPhonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("time_slot", func(fl validator.FieldLevel) bool {
		return domain.IsValidTimeSlot(fl.Field().String())
	})
	_ = v.RegisterValidation("destination_category", func(fl validator.FieldLevel) bool {
		return domain.IsValidDestinationCategory(fl.Field().String())
	})

	return v
}

// ValidateStruct валидирует структуру запроса и возвращает карту
// ошибок по полям (ключ — json имя поля). nil означает успех.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": "invalid request"}
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return details
}

// fieldMessage возвращает человекочитаемое сообщение для ошибки поля
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "nz_phone":
		return "Please enter a valid NZ phone number (e.g., 021234567 or 091234567)"
	case "time_slot":
		return "Please select a valid time slot"
	case "destination_category":
		return "Please select a destination type"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return "Invalid value"
	}
}
