// Package cli provides the command-line interface for the trade journal.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tradelog/pkg/utils"
)

// FormatPrice formats a price with two decimal places.
func FormatPrice(price float64) string {
	return utils.FormatCurrency(price)
}

// FormatOptionalPrice formats a possibly absent price.
func FormatOptionalPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return utils.FormatCurrency(*price)
}

// FormatQty formats a share quantity, dropping a trailing .00 for
// whole-share counts.
func FormatQty(qty float64) string {
	if qty == float64(int64(qty)) {
		return strconv.FormatInt(int64(qty), 10)
	}
	return fmt.Sprintf("%.2f", qty)
}

// FormatDate formats a date.
func FormatDate(t time.Time) string {
	return t.Format("02-Jan-2006")
}

// FormatOptionalDate formats a possibly absent date.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return FormatDate(*t)
}

// FormatTime formats a timestamp.
func FormatTime(t time.Time) string {
	return t.Format("02-Jan-2006 15:04")
}

// FormatRating formats a 0-5 rating as stars.
func FormatRating(rating float64) string {
	score := int(rating + 0.5)
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

// FormatTargets renders a target price list.
func FormatTargets(prices []float64) string {
	if len(prices) == 0 {
		return "-"
	}
	parts := make([]string, len(prices))
	for i, p := range prices {
		parts[i] = fmt.Sprintf("%.2f", p)
	}
	return strings.Join(parts, ", ")
}

// TruncateString truncates a string to max length with ellipsis.
func TruncateString(s string, maxLen int) string {
	return utils.TruncateString(s, maxLen)
}

// parsePrice parses a price flag, treating an empty string as unset.
func parsePrice(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", s)
	}
	return &v, nil
}

// parseDate parses a date flag in YYYY-MM-DD form.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}
