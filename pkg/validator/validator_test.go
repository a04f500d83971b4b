package validator

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.ru", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
		{"user@domain", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidateTimeOfDay(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"09:00", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"09:60", false},
		{"9:00", false},
		{"09-00", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateTimeOfDay(tt.value); got != tt.want {
			t.Errorf("ValidateTimeOfDay(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"hello-world", true},
		{"post-2024", true},
		{"a", true},
		{"Hello", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--dash", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateSlug(tt.slug); got != tt.want {
			t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+79151234567", "+79151234567"},
		{"8 (915) 123-45-67", "+79151234567"},
		{"79151234567", "+79151234567"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatPhone(tt.phone); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}
