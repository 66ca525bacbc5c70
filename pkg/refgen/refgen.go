package refgen

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// Alphabet исключает визуально похожие символы (0/O, 1/I)
const (
	Prefix   = "FR-"
	Alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	CodeLen  = 6
)

var referencePattern = regexp.MustCompile(`^FR-[23456789ABCDEFGHJKLMNPQRSTUVWXYZ]{6}$`)

// Generator выдает короткие публичные коды бронирования вида "FR-ABC234".
// Уникальность кодов гарантирует не генератор, а уникальный индекс на
// booking_reference: при коллизии вставка падает и код генерируется заново.
type Generator struct{}

// New создает новый генератор кодов бронирования
func New() *Generator {
	return &Generator{}
}

// Generate возвращает новый кандидат кода бронирования
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, CodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("refgen: failed to read random bytes: %w", err)
	}

	code := make([]byte, CodeLen)
	for i, b := range buf {
		code[i] = Alphabet[int(b)%len(Alphabet)]
	}

	return Prefix + string(code), nil
}

// IsValid проверяет, что строка соответствует формату кода бронирования
func IsValid(reference string) bool {
	return referencePattern.MatchString(reference)
}
