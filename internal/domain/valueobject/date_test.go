package valueobject

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("parses RFC3339 timestamps", func(t *testing.T) {
		parsed, ok := ParseDate("2025-03-10T14:30:00Z")
		if !ok {
			t.Fatal("expected RFC3339 timestamp to parse")
		}
		if parsed.Year() != 2025 || parsed.Month() != time.March || parsed.Day() != 10 {
			t.Errorf("unexpected date: %v", parsed)
		}
	})

	t.Run("parses plain YYYY-MM-DD", func(t *testing.T) {
		parsed, ok := ParseDate("2025-01-01")
		if !ok {
			t.Fatal("expected plain date to parse")
		}
		if parsed.Year() != 2025 || parsed.Month() != time.January || parsed.Day() != 1 {
			t.Errorf("unexpected date: %v", parsed)
		}
	})

	t.Run("parses DD/MM/YYYY", func(t *testing.T) {
		parsed, ok := ParseDate("15/08/2026")
		if !ok {
			t.Fatal("expected slash date to parse")
		}
		if parsed.Day() != 15 || parsed.Month() != time.August || parsed.Year() != 2026 {
			t.Errorf("unexpected date: %v", parsed)
		}
	})

	t.Run("maps two-digit years to 2000+", func(t *testing.T) {
		parsed, ok := ParseDate("01/02/26")
		if !ok {
			t.Fatal("expected two-digit year to parse")
		}
		if parsed.Year() != 2026 {
			t.Errorf("expected year 2026, got %d", parsed.Year())
		}
	})

	t.Run("rejects overflowed month days", func(t *testing.T) {
		if _, ok := ParseDate("31/02/2025"); ok {
			t.Error("expected 31/02 to be rejected")
		}
	})

	t.Run("returns not-ok for garbage", func(t *testing.T) {
		for _, raw := range []string{"", "soon", "12-13-14-15", "a/b/c"} {
			if _, ok := ParseDate(raw); ok {
				t.Errorf("expected %q to fail parsing", raw)
			}
		}
	})
}
