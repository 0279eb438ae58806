// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateSlug checks the URL-safe identifier format: lowercase letters,
// digits and dashes only.
func ValidateSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// ValidatePhone checks if a phone number is in a valid international or
// national format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows +XX international form or the 0-prefixed national form
	regex := `^(\+?[1-9]\d{6,14}|0[1-9]\d{8,9})$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
