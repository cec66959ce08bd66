// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the currency symbol and comma grouping.
// e.g., 15000 -> "₹15,000", 1234.50 -> "₹1,234.50"
func FormatMoney(currency string, amount decimal.Decimal) string {
	neg := amount.IsNegative()
	abs := amount.Abs()

	s := abs.String()
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var grouped strings.Builder
	remainder := len(intPart) % 3
	if remainder > 0 {
		grouped.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteString(intPart[i : i+3])
	}

	out := currency + grouped.String() + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatDate renders a date as an ISO day string, or "—" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("2006-01-02")
}

// FormatMonth renders a month as "January 2026".
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// ParseDate parses an ISO day string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// ParseMonth parses "YYYY-MM" into the first day of that month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return t, nil
}

// ParseAmount parses a money amount, rejecting non-numeric input.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
