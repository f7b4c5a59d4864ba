package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips formatting and prefixes the Indonesian country
// code (+62) for database storage. Local numbers written as 08xx become
// 628xx. Empty input stays empty.
func NormalizePhoneNumber(phoneNumber string) string {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	if digits == "" {
		return ""
	}
	if !strings.HasPrefix(digits, "62") {
		digits = "62" + strings.TrimLeft(digits, "0")
	}
	return digits
}

// ValidatePhoneNumber accepts Indonesian mobile numbers: country code plus a
// subscriber part starting with 8, 9 to 12 digits long.
func ValidatePhoneNumber(phoneNumber string) bool {
	normalized := NormalizePhoneNumber(phoneNumber)
	if !strings.HasPrefix(normalized, "628") {
		return false
	}
	subscriber := normalized[2:]
	return len(subscriber) >= 9 && len(subscriber) <= 12
}

// DisplayPhoneNumber formats a stored number as +62 8xx-xxxx-xxxx style.
func DisplayPhoneNumber(phoneNumber string) string {
	normalized := NormalizePhoneNumber(phoneNumber)
	if !strings.HasPrefix(normalized, "62") || len(normalized) < 6 {
		return phoneNumber
	}
	return "+62 " + normalized[2:]
}
