// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePhone checks if a phone number is in a valid format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[0-9]\d{6,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateDate checks the YYYY-MM-DD form used on appointments
func ValidateDate(date string) bool {
	return dateRegex.MatchString(date)
}

// ValidateTime checks the zero-padded HH:MM form used on appointments.
// Zero padding matters: appointment ordering relies on lexical comparison.
func ValidateTime(t string) bool {
	return timeRegex.MatchString(t)
}
