package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-42.1, "-$42.10"},
		{999, "$999.00"},
		{1000, "$1,000.00"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{3.456, "+3.46%"},
		{-2.1, "-2.10%"},
		{0, "0.00%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.value); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatSignedCurrency(t *testing.T) {
	if got := FormatSignedCurrency(100); got != "+$100.00" {
		t.Errorf("positive = %q", got)
	}
	if got := FormatSignedCurrency(-100); got != "-$100.00" {
		t.Errorf("negative = %q", got)
	}
	if got := FormatSignedCurrency(0); got != "$0.00" {
		t.Errorf("zero = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString = %q", got)
	}
	if got := TruncateString("a very long setup name", 10); got != "a very ..." {
		t.Errorf("TruncateString = %q", got)
	}
}
