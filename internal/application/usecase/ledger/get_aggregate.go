// Package ledger contains entry-ledger use cases.
package ledger

import (
	"context"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// GetAggregateOutput represents the current finance aggregate snapshot.
type GetAggregateOutput struct {
	Aggregate *entity.FinanceAggregate
}

// GetAggregateUseCase exposes the ledger's running totals and entries
// for balance display and charts.
type GetAggregateUseCase struct {
	ledger *store.LedgerStore
}

// NewGetAggregateUseCase creates a new GetAggregateUseCase instance.
func NewGetAggregateUseCase(ledger *store.LedgerStore) *GetAggregateUseCase {
	return &GetAggregateUseCase{
		ledger: ledger,
	}
}

// Execute returns the current snapshot.
func (uc *GetAggregateUseCase) Execute(ctx context.Context) (*GetAggregateOutput, error) {
	return &GetAggregateOutput{Aggregate: uc.ledger.Snapshot()}, nil
}
