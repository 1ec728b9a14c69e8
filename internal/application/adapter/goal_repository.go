// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// GoalRepository persists the whole goal collection (including nested
// transaction sub-ledgers) as a single document under the goals storage
// key.
type GoalRepository interface {
	// Load restores the persisted goal collection. Error semantics
	// match FinanceRepository.Load.
	Load(ctx context.Context) ([]*entity.Goal, error)

	// Save overwrites the persisted goal collection.
	Save(ctx context.Context, goals []*entity.Goal) error
}
