// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
	"github.com/e-budgetmo/backend/internal/domain/valueobject"
)

// CreateGoalInput represents a raw goal-creation submission.
type CreateGoalInput struct {
	ID           string
	Title        string
	Category     string
	Note         string
	TargetAmount string
	DueDate      string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goals *store.GoalStore
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goals *store.GoalStore) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goals: goals,
	}
}

// Execute validates and creates the goal with a zero running total and
// an empty sub-ledger.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	target, err := decimal.NewFromString(input.TargetAmount)
	if err != nil {
		target = decimal.Zero
	}
	if !target.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if _, ok := valueobject.ParseDate(input.DueDate); !ok {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDueDate,
			"due date must be a valid date",
			domainerror.ErrInvalidDueDate,
		)
	}

	goal := entity.NewGoal(
		input.ID,
		input.Title,
		input.Category,
		input.Note,
		target,
		input.DueDate,
	)

	uc.goals.Create(goal)

	return &CreateGoalOutput{Goal: goal}, nil
}
