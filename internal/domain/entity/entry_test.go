package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewEntry(t *testing.T) {
	now := time.Now().UTC()
	amount := decimal.RequireFromString("150.25")

	t.Run("assigns an id when missing", func(t *testing.T) {
		entry := NewEntry("", now, EntryTypeIncome, amount, "Salary", "Payday", "")
		if entry.ID == "" {
			t.Error("expected entry to receive a generated id")
		}
	})

	t.Run("keeps a provided id", func(t *testing.T) {
		entry := NewEntry("e-1", now, EntryTypeIncome, amount, "Salary", "Payday", "")
		if entry.ID != "e-1" {
			t.Errorf("expected id e-1, got %s", entry.ID)
		}
	})

	t.Run("defaults empty category", func(t *testing.T) {
		entry := NewEntry("", now, EntryTypeExpense, amount, "", "Lunch", "")
		if entry.Category != DefaultCategory {
			t.Errorf("expected %q, got %q", DefaultCategory, entry.Category)
		}
	})

	t.Run("falls back title to note", func(t *testing.T) {
		entry := NewEntry("", now, EntryTypeExpense, amount, "Food", "", "weekly groceries")
		if entry.Title != "weekly groceries" {
			t.Errorf("expected title to fall back to note, got %q", entry.Title)
		}
	})
}

func TestEntryLabel(t *testing.T) {
	now := time.Now().UTC()
	amount := decimal.RequireFromString("10")

	t.Run("prefers a real category", func(t *testing.T) {
		entry := NewEntry("", now, EntryTypeExpense, amount, "Food", "Lunch", "")
		if got := entry.Label(); got != "Food" {
			t.Errorf("expected Food, got %q", got)
		}
	})

	t.Run("falls through the default category to the title", func(t *testing.T) {
		entry := NewEntry("", now, EntryTypeExpense, amount, "", "Lunch", "")
		if got := entry.Label(); got != "Lunch" {
			t.Errorf("expected Lunch, got %q", got)
		}
	})

	t.Run("ends at the note", func(t *testing.T) {
		entry := &Entry{Category: DefaultCategory, Note: "misc"}
		if got := entry.Label(); got != "misc" {
			t.Errorf("expected misc, got %q", got)
		}
	})
}
