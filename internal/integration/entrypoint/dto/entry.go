// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// AppendEntryRequest represents the request body for appending a ledger
// entry. Amount is a json.Number so the use case sees the raw token and
// applies its own coerce-to-zero policy.
type AppendEntryRequest struct {
	ID       string      `json:"id,omitempty"`
	Date     string      `json:"date,omitempty"`
	Type     string      `json:"type" binding:"required"`
	Amount   json.Number `json:"amount" binding:"required"`
	Category string      `json:"category,omitempty"`
	Title    string      `json:"title,omitempty"`
	Note     string      `json:"note,omitempty"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date,omitempty"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Title    string  `json:"title,omitempty"`
	Note     string  `json:"note,omitempty"`
	Label    string  `json:"label"`
}

// FinanceAggregateResponse represents the finance snapshot.
type FinanceAggregateResponse struct {
	Income  float64         `json:"income"`
	Expense float64         `json:"expense"`
	Balance float64         `json:"balance"`
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain Entry to an EntryResponse DTO.
func ToEntryResponse(e *entity.Entry) EntryResponse {
	response := EntryResponse{
		ID:       e.ID,
		Type:     string(e.Type),
		Amount:   e.Amount.InexactFloat64(),
		Category: e.Category,
		Title:    e.Title,
		Note:     e.Note,
		Label:    e.Label(),
	}
	if !e.Date.IsZero() {
		response.Date = e.Date.UTC().Format(time.RFC3339Nano)
	}
	return response
}

// ToFinanceAggregateResponse converts a domain aggregate to its DTO.
func ToFinanceAggregateResponse(aggregate *entity.FinanceAggregate) FinanceAggregateResponse {
	entries := make([]EntryResponse, len(aggregate.Entries))
	for i, e := range aggregate.Entries {
		entries[i] = ToEntryResponse(e)
	}
	return FinanceAggregateResponse{
		Income:  aggregate.Income.InexactFloat64(),
		Expense: aggregate.Expense.InexactFloat64(),
		Balance: aggregate.Balance.InexactFloat64(),
		Entries: entries,
	}
}
