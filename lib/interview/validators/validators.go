package validators

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// ValidateEmail проверяет формат адреса, без проверки DNS и существования ящика
func ValidateEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// ValidatePhone проверяет количество цифр в номере (от 10 до 15), остальные символы игнорируются
func ValidatePhone(phone string) bool {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}
