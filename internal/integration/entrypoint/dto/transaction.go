// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/e-budgetmo/backend/internal/domain/entity"

// TransactionListResponse represents the merged transaction view.
type TransactionListResponse struct {
	Transactions []EntryResponse `json:"transactions"`
}

// ToTransactionListResponse converts merged entries to their DTO.
func ToTransactionListResponse(entries []*entity.Entry) TransactionListResponse {
	transactions := make([]EntryResponse, len(entries))
	for i, e := range entries {
		transactions[i] = ToEntryResponse(e)
	}
	return TransactionListResponse{Transactions: transactions}
}
