package frequency

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		expected  Config
		found     bool
	}{
		{"Weekly", Weekly, Config{PaymentsPerYear: 52, DaysBetween: 7}, true},
		{"Bi-weekly", BiWeekly, Config{PaymentsPerYear: 26, DaysBetween: 14}, true},
		{"Twice monthly", TwiceMonthly, Config{PaymentsPerYear: 24, DaysBetween: 15}, true},
		{"Monthly", Monthly, Config{PaymentsPerYear: 12, MonthsBetween: 1}, true},
		{"Unknown", Frequency("quarterly"), Config{}, false},
		{"Empty", Frequency(""), Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, found := Lookup(tt.frequency)
			if found != tt.found {
				t.Fatalf("Lookup(%q) found = %v, expected %v", tt.frequency, found, tt.found)
			}
			if config != tt.expected {
				t.Errorf("Lookup(%q) = %+v, expected %+v", tt.frequency, config, tt.expected)
			}
			if tt.frequency.Valid() != tt.found {
				t.Errorf("Valid(%q) = %v, expected %v", tt.frequency, tt.frequency.Valid(), tt.found)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		expected  Frequency
		expectErr bool
	}{
		{"weekly", Weekly, false},
		{"Bi-Weekly", BiWeekly, false},
		{"biweekly", BiWeekly, false},
		{" twice-monthly ", TwiceMonthly, false},
		{"semi-monthly", TwiceMonthly, false},
		{"MONTHLY", Monthly, false},
		{"daily", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Parse(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("Parse(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
			if result != tt.expected {
				t.Errorf("Parse(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaultNumberOfPayments(t *testing.T) {
	expected := map[Frequency]int{
		Weekly:       12,
		BiWeekly:     6,
		TwiceMonthly: 6,
		Monthly:      3,
	}
	for _, f := range All() {
		if got := DefaultNumberOfPayments(f); got != expected[f] {
			t.Errorf("DefaultNumberOfPayments(%q) = %d, expected %d", f, got, expected[f])
		}
	}
	if got := DefaultNumberOfPayments("fortnightly"); got != 0 {
		t.Errorf("DefaultNumberOfPayments(unknown) = %d, expected 0", got)
	}
}

func TestNumberOfPaymentsForTerm(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		months    int
		expected  int
	}{
		{"Monthly year", Monthly, 12, 12},
		{"Twice monthly year", TwiceMonthly, 12, 24},
		{"Bi-weekly half year", BiWeekly, 6, 12},
		{"Weekly two months", Weekly, 2, 8},
		{"Zero months", Monthly, 0, 0},
		{"Negative months", Weekly, -1, 0},
		{"Unknown frequency", Frequency("yearly"), 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumberOfPaymentsForTerm(tt.frequency, tt.months); got != tt.expected {
				t.Errorf("NumberOfPaymentsForTerm(%q, %d) = %d, expected %d",
					tt.frequency, tt.months, got, tt.expected)
			}
		})
	}
}
