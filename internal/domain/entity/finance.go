// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// FinanceAggregate is the cached income/expense/balance totals plus the
// entry collection, ordered most-recent-first. The invariant
// balance == income - expense holds after every mutation.
type FinanceAggregate struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Entries []*Entry
}

// ZeroFinanceAggregate returns the empty starting state used when no
// prior persisted state exists.
func ZeroFinanceAggregate() *FinanceAggregate {
	return &FinanceAggregate{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Balance: decimal.Zero,
		Entries: []*Entry{},
	}
}
