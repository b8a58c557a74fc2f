package cli

import (
	"testing"
	"time"
)

func TestFormatQty(t *testing.T) {
	tests := []struct {
		qty  float64
		want string
	}{
		{100, "100"},
		{0, "0"},
		{12.5, "12.50"},
	}
	for _, tt := range tests {
		if got := FormatQty(tt.qty); got != tt.want {
			t.Errorf("FormatQty(%v) = %q, want %q", tt.qty, got, tt.want)
		}
	}
}

func TestFormatRating(t *testing.T) {
	if got := FormatRating(4); got != "★★★★☆" {
		t.Errorf("FormatRating(4) = %q", got)
	}
	if got := FormatRating(0); got != "☆☆☆☆☆" {
		t.Errorf("FormatRating(0) = %q", got)
	}
	if got := FormatRating(9); got != "★★★★★" {
		t.Errorf("FormatRating(9) = %q", got)
	}
}

func TestFormatOptionalPrice(t *testing.T) {
	if got := FormatOptionalPrice(nil); got != "-" {
		t.Errorf("nil = %q", got)
	}
	v := 182.5
	if got := FormatOptionalPrice(&v); got != "$182.50" {
		t.Errorf("value = %q", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-03-15")
	if err != nil || d == nil {
		t.Fatalf("parseDate: %v", err)
	}
	if !d.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", d)
	}

	if d, err := parseDate(""); err != nil || d != nil {
		t.Errorf("empty input should be unset, got %v, %v", d, err)
	}
	if _, err := parseDate("15/03/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestFormatTargets(t *testing.T) {
	if got := FormatTargets(nil); got != "-" {
		t.Errorf("empty = %q", got)
	}
	if got := FormatTargets([]float64{195, 210.5}); got != "195.00, 210.50" {
		t.Errorf("targets = %q", got)
	}
}
