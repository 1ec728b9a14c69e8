// Package valueobject contains small immutable domain values and parsers.
package valueobject

import (
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a date string permissively, trying RFC3339, plain
// YYYY-MM-DD, and DD/MM/YY[YY] in that order. Two-digit years are
// assumed to be 2000+. It never fails hard: ok is false when no format
// matches.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}

	if t, ok := parseSlashDate(raw); ok {
		return t, true
	}

	return time.Time{}, false
}

// parseSlashDate accepts DD/MM/YY and DD/MM/YYYY.
func parseSlashDate(raw string) (time.Time, bool) {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}

	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject overflowed days such as 31/02.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}
