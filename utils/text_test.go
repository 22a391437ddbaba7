package utils

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Sécurité", "securite"},
		{"Côte d'Ivoire", "cote d'ivoire"},
		{"All Jobs", "all jobs"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.expected {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
