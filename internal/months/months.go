// Package months provides calendar-month helpers for the date-string ledger.
// Ledger dates are ISO calendar-date strings (YYYY-MM-DD), so an inclusive
// month range can be compared lexicographically in SQL.
package months

import (
	"fmt"
	"time"
)

// LastDay returns the number of days in the given month.
func LastDay(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Range returns the inclusive [first, last] date strings for a month,
// e.g. ("2024-12-01", "2024-12-31").
func Range(year, month int) (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := Date(year, month, LastDay(year, month))
	return start, end
}

// Date formats a calendar date string for the given day of a month.
func Date(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Abbr returns the three-letter English abbreviation for a month (Jan..Dec).
func Abbr(month int) string {
	return time.Month(month).String()[:3]
}

// IsValid reports whether month/year identify a real calendar month.
func IsValid(year, month int) bool {
	return month >= 1 && month <= 12 && year >= 1 && year <= 9999
}
