// Package model defines the persisted JSON document layouts.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// EntryModel is the stored shape of a ledger entry. Amounts are plain
// JSON numbers so documents written by the mobile clients stay readable.
type EntryModel struct {
	ID       string  `json:"id"`
	Date     string  `json:"date,omitempty"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	Title    string  `json:"title,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// FinanceModel is the stored shape of the finance aggregate under the
// finance storage key.
type FinanceModel struct {
	Income  float64      `json:"income"`
	Expense float64      `json:"expense"`
	Balance float64      `json:"balance"`
	Entries []EntryModel `json:"entries"`
}

// EntryFromEntity converts a domain Entry to its stored shape.
func EntryFromEntity(e *entity.Entry) EntryModel {
	m := EntryModel{
		ID:       e.ID,
		Type:     string(e.Type),
		Amount:   e.Amount.InexactFloat64(),
		Category: e.Category,
		Title:    e.Title,
		Note:     e.Note,
	}
	if !e.Date.IsZero() {
		m.Date = e.Date.UTC().Format(time.RFC3339Nano)
	}
	return m
}

// ToEntity converts the stored shape back to a domain Entry.
func (m EntryModel) ToEntity() *entity.Entry {
	date := time.Time{}
	if m.Date != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, m.Date); err == nil {
			date = parsed
		}
	}
	return &entity.Entry{
		ID:       m.ID,
		Date:     date,
		Type:     entity.EntryType(m.Type),
		Amount:   decimal.NewFromFloat(m.Amount),
		Category: m.Category,
		Title:    m.Title,
		Note:     m.Note,
	}
}

// FinanceFromEntity converts a domain aggregate to its stored shape.
func FinanceFromEntity(aggregate *entity.FinanceAggregate) FinanceModel {
	entries := make([]EntryModel, len(aggregate.Entries))
	for i, e := range aggregate.Entries {
		entries[i] = EntryFromEntity(e)
	}
	return FinanceModel{
		Income:  aggregate.Income.InexactFloat64(),
		Expense: aggregate.Expense.InexactFloat64(),
		Balance: aggregate.Balance.InexactFloat64(),
		Entries: entries,
	}
}

// ToEntity converts the stored shape back to a domain aggregate.
func (m FinanceModel) ToEntity() *entity.FinanceAggregate {
	entries := make([]*entity.Entry, len(m.Entries))
	for i, em := range m.Entries {
		entries[i] = em.ToEntity()
	}
	return &entity.FinanceAggregate{
		Income:  decimal.NewFromFloat(m.Income),
		Expense: decimal.NewFromFloat(m.Expense),
		Balance: decimal.NewFromFloat(m.Balance),
		Entries: entries,
	}
}
