// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType represents the type of ledger entry (income or expense).
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// DefaultCategory is the category assigned to entries submitted without one.
const DefaultCategory = "Uncategorized"

// Entry represents a single income or expense record in the ledger.
// Entries are immutable once created; the ledger supports no update or
// delete operation.
type Entry struct {
	ID       string
	Date     time.Time
	Type     EntryType
	Amount   decimal.Decimal
	Category string
	Title    string
	Note     string
}

// NewEntry creates a normalized Entry from a raw submission.
// A missing id is assigned, a missing category falls back to
// DefaultCategory, and an empty title falls back to the note (title is
// canonical, note is retained for backward compatibility).
func NewEntry(id string, date time.Time, entryType EntryType, amount decimal.Decimal, category, title, note string) *Entry {
	if id == "" {
		id = uuid.NewString()
	}
	if category == "" {
		category = DefaultCategory
	}
	if title == "" {
		title = note
	}

	return &Entry{
		ID:       id,
		Date:     date,
		Type:     entryType,
		Amount:   amount,
		Category: category,
		Title:    title,
		Note:     note,
	}
}

// Label returns the display label for the entry, preferring category,
// then title, then note.
func (e *Entry) Label() string {
	switch {
	case e.Category != "" && e.Category != DefaultCategory:
		return e.Category
	case e.Title != "":
		return e.Title
	default:
		return e.Note
	}
}
