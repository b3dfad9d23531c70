package util

import (
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "regular address", email: "alice@example.com", expected: "a***e@example.com"},
		{name: "short local part", email: "al@example.com", expected: "a***@example.com"},
		{name: "single char local part", email: "a@example.com", expected: "a***@example.com"},
		{name: "no at sign", email: "alice", expected: "***"},
		{name: "empty local part", email: "@example.com", expected: "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MaskEmail(tt.email); got != tt.expected {
				t.Fatalf("MaskEmail(%q) = %s, want %s", tt.email, got, tt.expected)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces", input: "Air Max 90", expected: "air-max-90"},
		{name: "punctuation", input: "  Runner's  Pro! ", expected: "runner-s-pro"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.expected {
				t.Fatalf("Slugify(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}
