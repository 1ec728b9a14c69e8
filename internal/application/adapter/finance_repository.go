// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// FinanceRepository persists the whole finance aggregate (totals plus
// entry collection) as a single document under the finance storage key.
type FinanceRepository interface {
	// Load restores the persisted aggregate. It returns
	// domainerror.ErrStateNotFound when nothing was ever saved and
	// domainerror.ErrStateCorrupt when the stored document fails to
	// decode; callers treat both as "start from the zero state".
	Load(ctx context.Context) (*entity.FinanceAggregate, error)

	// Save overwrites the persisted aggregate.
	Save(ctx context.Context, aggregate *entity.FinanceAggregate) error
}
