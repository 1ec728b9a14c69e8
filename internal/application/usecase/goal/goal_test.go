package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
)

type stubFinanceRepository struct{}

func (stubFinanceRepository) Load(context.Context) (*entity.FinanceAggregate, error) {
	return nil, domainerror.ErrStateNotFound
}

func (stubFinanceRepository) Save(context.Context, *entity.FinanceAggregate) error {
	return nil
}

type stubGoalRepository struct{}

func (stubGoalRepository) Load(context.Context) ([]*entity.Goal, error) {
	return nil, domainerror.ErrStateNotFound
}

func (stubGoalRepository) Save(context.Context, []*entity.Goal) error {
	return nil
}

func newTestStores(t *testing.T) (*store.GoalStore, *store.LedgerStore) {
	t.Helper()
	goals := store.NewGoalStore(stubGoalRepository{})
	ledger := store.NewLedgerStore(stubFinanceRepository{})
	t.Cleanup(goals.Close)
	t.Cleanup(ledger.Close)
	return goals, ledger
}

func TestCreateGoalUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a goal with a zero running total", func(t *testing.T) {
		goals, _ := newTestStores(t)
		uc := NewCreateGoalUseCase(goals)

		output, err := uc.Execute(ctx, CreateGoalInput{
			Title:        "Laptop",
			Category:     "Savings",
			TargetAmount: "1500",
			DueDate:      "2030-06-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.Current.IsZero() {
			t.Errorf("expected zero current, got %s", output.Goal.Current)
		}
		if output.Goal.ID == "" {
			t.Error("expected a generated id")
		}
	})

	t.Run("rejects a non-positive target without touching the collection", func(t *testing.T) {
		goals, _ := newTestStores(t)
		uc := NewCreateGoalUseCase(goals)

		for _, target := range []string{"0", "-5", "abc"} {
			if _, err := uc.Execute(ctx, CreateGoalInput{TargetAmount: target, DueDate: "2030-06-01"}); !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
				t.Errorf("target %q: expected ErrInvalidTargetAmount, got %v", target, err)
			}
		}
		if got := goals.List(); len(got) != 0 {
			t.Errorf("expected empty collection after rejections, got %d", len(got))
		}
	})

	t.Run("rejects an unparseable due date", func(t *testing.T) {
		goals, _ := newTestStores(t)
		uc := NewCreateGoalUseCase(goals)

		_, err := uc.Execute(ctx, CreateGoalInput{TargetAmount: "100", DueDate: "someday"})
		if !errors.Is(err, domainerror.ErrInvalidDueDate) {
			t.Fatalf("expected ErrInvalidDueDate, got %v", err)
		}
	})
}

func TestAdjustGoalUseCase(t *testing.T) {
	ctx := context.Background()

	createGoal := func(t *testing.T, goals *store.GoalStore) *entity.Goal {
		t.Helper()
		output, err := NewCreateGoalUseCase(goals).Execute(ctx, CreateGoalInput{
			Title:        "Trip",
			Category:     "Vacation",
			TargetAmount: "1000",
			DueDate:      "2030-06-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return output.Goal
	}

	t.Run("add emits a mirrored expense with the goal's title and category", func(t *testing.T) {
		goals, ledger := newTestStores(t)
		uc := NewAdjustGoalUseCase(goals, ledger)
		goal := createGoal(t, goals)

		output, err := uc.Execute(ctx, AdjustGoalInput{GoalID: goal.ID, Amount: "250", Action: "add"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.Current.Equal(decimal.RequireFromString("250")) {
			t.Errorf("expected current 250, got %s", output.Goal.Current)
		}

		aggregate := ledger.Snapshot()
		if len(aggregate.Entries) != 1 {
			t.Fatalf("expected one mirrored entry, got %d", len(aggregate.Entries))
		}
		mirrored := aggregate.Entries[0]
		if mirrored.Type != entity.EntryTypeExpense {
			t.Errorf("expected mirrored expense, got %q", mirrored.Type)
		}
		if mirrored.Title != "Trip" || mirrored.Category != "Vacation" {
			t.Errorf("expected goal title/category on mirror, got %q/%q", mirrored.Title, mirrored.Category)
		}
		if !mirrored.Amount.Equal(decimal.RequireFromString("250")) {
			t.Errorf("expected mirrored amount 250, got %s", mirrored.Amount)
		}
	})

	t.Run("withdraw emits a mirrored income with the absolute amount", func(t *testing.T) {
		goals, ledger := newTestStores(t)
		uc := NewAdjustGoalUseCase(goals, ledger)
		goal := createGoal(t, goals)

		if _, err := uc.Execute(ctx, AdjustGoalInput{GoalID: goal.ID, Amount: "500", Action: "add"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, AdjustGoalInput{GoalID: goal.ID, Amount: "200", Action: "withdraw"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		aggregate := ledger.Snapshot()
		mirrored := aggregate.Entries[0]
		if mirrored.Type != entity.EntryTypeIncome {
			t.Errorf("expected mirrored income, got %q", mirrored.Type)
		}
		if !mirrored.Amount.Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected mirrored amount 200, got %s", mirrored.Amount)
		}
		if !aggregate.Balance.Equal(decimal.RequireFromString("-300")) {
			t.Errorf("expected balance -300 after commit and partial return, got %s", aggregate.Balance)
		}
	})

	t.Run("invalid amount leaves both stores untouched", func(t *testing.T) {
		goals, ledger := newTestStores(t)
		uc := NewAdjustGoalUseCase(goals, ledger)
		goal := createGoal(t, goals)

		_, err := uc.Execute(ctx, AdjustGoalInput{GoalID: goal.ID, Amount: "nope", Action: "add"})
		if !errors.Is(err, domainerror.ErrInvalidAdjustAmount) {
			t.Fatalf("expected ErrInvalidAdjustAmount, got %v", err)
		}
		if got := ledger.Snapshot(); len(got.Entries) != 0 {
			t.Errorf("expected no mirrored entry, got %d", len(got.Entries))
		}
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		goals, ledger := newTestStores(t)
		uc := NewAdjustGoalUseCase(goals, ledger)
		goal := createGoal(t, goals)

		_, err := uc.Execute(ctx, AdjustGoalInput{GoalID: goal.ID, Amount: "10", Action: "transfer"})
		if !errors.Is(err, domainerror.ErrInvalidGoalAction) {
			t.Fatalf("expected ErrInvalidGoalAction, got %v", err)
		}
	})

	t.Run("unknown goal yields not-found with no mirrored entry", func(t *testing.T) {
		goals, ledger := newTestStores(t)
		uc := NewAdjustGoalUseCase(goals, ledger)

		_, err := uc.Execute(ctx, AdjustGoalInput{GoalID: "missing", Amount: "10", Action: "add"})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
		if got := ledger.Snapshot(); len(got.Entries) != 0 {
			t.Errorf("expected no mirrored entry, got %d", len(got.Entries))
		}
	})
}

func TestDeleteGoalUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("requires explicit confirmation", func(t *testing.T) {
		goals, _ := newTestStores(t)
		uc := NewDeleteGoalUseCase(goals)

		err := uc.Execute(ctx, DeleteGoalInput{GoalID: "any", Confirmed: false})
		if !errors.Is(err, domainerror.ErrDeleteNotConfirmed) {
			t.Fatalf("expected ErrDeleteNotConfirmed, got %v", err)
		}
	})

	t.Run("removes the goal but keeps mirrored ledger entries", func(t *testing.T) {
		goals, ledger := newTestStores(t)
		created, err := NewCreateGoalUseCase(goals).Execute(ctx, CreateGoalInput{
			Title:        "Trip",
			Category:     "Vacation",
			TargetAmount: "1000",
			DueDate:      "2030-06-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := NewAdjustGoalUseCase(goals, ledger).Execute(ctx, AdjustGoalInput{GoalID: created.Goal.ID, Amount: "100", Action: "add"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := NewDeleteGoalUseCase(goals).Execute(ctx, DeleteGoalInput{GoalID: created.Goal.ID, Confirmed: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := goals.List(); len(got) != 0 {
			t.Errorf("expected empty collection, got %d goals", len(got))
		}
		if got := ledger.Snapshot(); len(got.Entries) != 1 {
			t.Errorf("expected mirrored entry to survive deletion, got %d", len(got.Entries))
		}
	})

	t.Run("unknown goal yields not-found", func(t *testing.T) {
		goals, _ := newTestStores(t)

		err := NewDeleteGoalUseCase(goals).Execute(ctx, DeleteGoalInput{GoalID: "missing", Confirmed: true})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
	})
}

func TestListGoalsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("every category group is present even when empty", func(t *testing.T) {
		goals, _ := newTestStores(t)
		output, err := NewListGoalsUseCase(goals).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Groups) != len(CategoryOrder)+1 {
			t.Fatalf("expected %d groups, got %d", len(CategoryOrder)+1, len(output.Groups))
		}
		if output.Groups[len(output.Groups)-1].Category != OthersCategory {
			t.Errorf("expected %q last, got %q", OthersCategory, output.Groups[len(output.Groups)-1].Category)
		}
	})

	t.Run("unknown and mismatched categories land in Others", func(t *testing.T) {
		goals, _ := newTestStores(t)
		uc := NewCreateGoalUseCase(goals)

		inputs := []CreateGoalInput{
			{Title: "a", Category: "Savings", TargetAmount: "1", DueDate: "2030-01-01"},
			{Title: "b", Category: "savings", TargetAmount: "1", DueDate: "2030-01-01"},
			{Title: "c", Category: "Crypto", TargetAmount: "1", DueDate: "2030-01-01"},
			{Title: "d", Category: "Others", TargetAmount: "1", DueDate: "2030-01-01"},
		}
		for _, input := range inputs {
			if _, err := uc.Execute(ctx, input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		output, err := NewListGoalsUseCase(goals).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		byCategory := make(map[string][]*entity.Goal, len(output.Groups))
		for _, group := range output.Groups {
			byCategory[group.Category] = group.Goals
		}
		if len(byCategory["Savings"]) != 1 || byCategory["Savings"][0].Title != "a" {
			t.Errorf("expected only the exact-match goal in Savings, got %d", len(byCategory["Savings"]))
		}
		if len(byCategory[OthersCategory]) != 3 {
			t.Errorf("expected 3 goals in Others, got %d", len(byCategory[OthersCategory]))
		}
	})
}
