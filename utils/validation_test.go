package utils

import "testing"

func TestValidateSlug(t *testing.T) {
	valid := []string{"lazer-epilasyon", "botoks", "cilt-bakimi-2024", "a"}
	for _, slug := range valid {
		if !ValidateSlug(slug) {
			t.Errorf("ValidateSlug(%q) = false, want true", slug)
		}
	}

	invalid := []string{"", "Lazer-Epilasyon", "cilt bakimi", "botoks!", "türkçe-karakter", "slug/alt"}
	for _, slug := range invalid {
		if ValidateSlug(slug) {
			t.Errorf("ValidateSlug(%q) = true, want false", slug)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+905551234567", "05551234567", "0555 123 45 67", "+1 (555) 123-4567"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{"", "abc", "+", "0", "0123", "+05551234567"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}
