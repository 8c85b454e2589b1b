package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"Default currency", 1234.56, "", "$1,234.56"},
		{"Canadian dollars", 174.79, "CAD", "$174.79"},
		{"Lowercase code", 1000, "cad", "$1,000.00"},
		{"Large amount", 175000, "CAD", "$175,000.00"},
		{"Negative amount", -524.35, "CAD", "-$524.35"},
		{"Zero", 0, "CAD", "$0.00"},
		{"Rounded to cents", 0.005, "CAD", "$0.01"},
		{"Tiny negative rounds to zero", -0.001, "CAD", "$0.00"},
		{"Unknown code", 12.5, "ZZZ", "ZZZ 12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount, tt.code)
			if result != tt.expected {
				t.Errorf("Currency(%v, %q) = %q, expected %q", tt.amount, tt.code, result, tt.expected)
			}
		})
	}
}
