package transaction

import (
	"context"
	"testing"
	"time"

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

func newTestStores(t *testing.T) (*store.LedgerStore, *store.GoalStore) {
	t.Helper()
	ledger := store.NewLedgerStore(stubFinanceRepository{})
	goals := store.NewGoalStore(stubGoalRepository{})
	t.Cleanup(ledger.Close)
	t.Cleanup(goals.Close)
	return ledger, goals
}

func TestMergeTransactions(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("mirrored adjustments appear once", func(t *testing.T) {
		ledger, goals := newTestStores(t)
		goal := entity.NewGoal("", "Trip", "Vacation", "", decimal.RequireFromString("1000"), "2030-01-01")
		goals.Create(goal)
		_, tx, err := goals.Adjust(goal.ID, decimal.RequireFromString("250"), entity.GoalActionAdd, day(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The mirrored ledger entry the adjust flow would have written.
		ledger.Append(entity.NewEntry("", tx.Date, entity.EntryTypeExpense, tx.Amount.Abs(), goal.Category, goal.Title, ""))

		output, err := NewMergeTransactionsUseCase(ledger, goals).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 1 {
			t.Fatalf("expected the adjustment to merge into one row, got %d", len(output.Entries))
		}
	})

	t.Run("unmirrored goal transactions are synthesized", func(t *testing.T) {
		ledger, goals := newTestStores(t)
		goal := entity.NewGoal("", "Trip", "Vacation", "", decimal.RequireFromString("1000"), "2030-01-01")
		goals.Create(goal)
		goals.Adjust(goal.ID, decimal.RequireFromString("250"), entity.GoalActionAdd, day(10))
		goals.Adjust(goal.ID, decimal.RequireFromString("100"), entity.GoalActionWithdraw, day(12))

		output, err := NewMergeTransactionsUseCase(ledger, goals).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 2 {
			t.Fatalf("expected 2 synthesized rows, got %d", len(output.Entries))
		}
		// Newest first: the withdrawal on the 12th leads.
		if output.Entries[0].Type != entity.EntryTypeIncome {
			t.Errorf("expected the withdrawal to render as income, got %q", output.Entries[0].Type)
		}
		if !output.Entries[0].Amount.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected absolute amount 100, got %s", output.Entries[0].Amount)
		}
		if output.Entries[1].Type != entity.EntryTypeExpense {
			t.Errorf("expected the contribution to render as expense, got %q", output.Entries[1].Type)
		}
	})

	t.Run("distinct rows sharing a key collapse only across sources", func(t *testing.T) {
		ledger, goals := newTestStores(t)
		// Two real ledger entries with identical key fields both stay.
		ledger.Append(entity.NewEntry("", day(5), entity.EntryTypeExpense, decimal.RequireFromString("50"), "Food", "Lunch", ""))
		ledger.Append(entity.NewEntry("", day(5), entity.EntryTypeExpense, decimal.RequireFromString("50"), "Food", "Lunch", ""))

		output, err := NewMergeTransactionsUseCase(ledger, goals).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 2 {
			t.Fatalf("expected both ledger entries to survive, got %d", len(output.Entries))
		}
	})

	t.Run("sorts newest first with zero dates last", func(t *testing.T) {
		ledger, goals := newTestStores(t)
		ledger.Append(entity.NewEntry("", time.Time{}, entity.EntryTypeExpense, decimal.RequireFromString("1"), "", "undated", ""))
		ledger.Append(entity.NewEntry("", day(1), entity.EntryTypeExpense, decimal.RequireFromString("2"), "", "oldest", ""))
		ledger.Append(entity.NewEntry("", day(20), entity.EntryTypeExpense, decimal.RequireFromString("3"), "", "newest", ""))

		output, err := NewMergeTransactionsUseCase(ledger, goals).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		titles := []string{output.Entries[0].Title, output.Entries[1].Title, output.Entries[2].Title}
		want := []string{"newest", "oldest", "undated"}
		for i := range want {
			if titles[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, titles)
			}
		}
	})
}
