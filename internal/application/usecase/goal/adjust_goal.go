// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
)

// AdjustGoalInput represents a goal add/withdraw request.
type AdjustGoalInput struct {
	GoalID string
	Amount string
	Action string
}

// AdjustGoalOutput represents the output of a goal adjustment.
type AdjustGoalOutput struct {
	Goal *entity.Goal
}

// AdjustGoalUseCase coordinates a goal adjustment and its mirrored
// ledger entry: committing cash to a goal reduces available cash
// (expense), withdrawing returns it (income). The mirrored entry carries
// the goal's own title and category so the statistics and transaction
// views line up with the sub-ledger.
type AdjustGoalUseCase struct {
	goals  *store.GoalStore
	ledger *store.LedgerStore
}

// NewAdjustGoalUseCase creates a new AdjustGoalUseCase instance.
func NewAdjustGoalUseCase(goals *store.GoalStore, ledger *store.LedgerStore) *AdjustGoalUseCase {
	return &AdjustGoalUseCase{
		goals:  goals,
		ledger: ledger,
	}
}

// Execute validates the request, adjusts the goal, then emits the
// mirrored ledger entry. The two writes are sequential and persisted
// independently; a crash between them leaves the goal adjusted with the
// mirrored entry missing.
func (uc *AdjustGoalUseCase) Execute(ctx context.Context, input AdjustGoalInput) (*AdjustGoalOutput, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		amount = decimal.Zero
	}
	if !amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidAdjustAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAdjustAmount,
		)
	}

	action := entity.GoalAction(input.Action)
	if action != entity.GoalActionAdd && action != entity.GoalActionWithdraw {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAction,
			"action must be 'add' or 'withdraw'",
			domainerror.ErrInvalidGoalAction,
		)
	}

	now := time.Now().UTC()

	goal, tx, err := uc.goals.Adjust(input.GoalID, amount, action, now)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			err,
		)
	}

	// Mirrored entry: adds spend cash, withdrawals return it. The
	// withdraw->income mapping can double-count against a later real
	// expense of the same money; statements treat a withdrawal as cash
	// coming back regardless of what it is spent on next.
	entryType := entity.EntryTypeExpense
	if action == entity.GoalActionWithdraw {
		entryType = entity.EntryTypeIncome
	}
	mirrored := entity.NewEntry(
		"",
		tx.Date,
		entryType,
		tx.Amount.Abs(),
		goal.Category,
		goal.Title,
		"",
	)
	uc.ledger.Append(mirrored)

	return &AdjustGoalOutput{Goal: goal}, nil
}
