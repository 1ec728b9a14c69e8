// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"

	"github.com/e-budgetmo/backend/internal/application/store"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
)

// DeleteGoalInput represents a goal deletion request. Confirmed must be
// set by the caller after the user acknowledged that deletion is
// irreversible.
type DeleteGoalInput struct {
	GoalID    string
	Confirmed bool
}

// DeleteGoalUseCase handles irreversible goal deletion. Mirrored ledger
// entries created by past adjustments are not retracted; the ledger
// keeps the cash movements that actually happened.
type DeleteGoalUseCase struct {
	goals *store.GoalStore
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goals *store.GoalStore) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goals: goals,
	}
}

// Execute removes the goal and its sub-ledger.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if !input.Confirmed {
		return domainerror.NewGoalError(
			domainerror.ErrCodeDeleteNotConfirmed,
			"deletion must be explicitly confirmed",
			domainerror.ErrDeleteNotConfirmed,
		)
	}

	if err := uc.goals.Delete(input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				err,
			)
		}
		return err
	}
	return nil
}
