package ledger

import (
	"context"
	"errors"
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

func newTestLedger(t *testing.T) *store.LedgerStore {
	t.Helper()
	s := store.NewLedgerStore(stubFinanceRepository{})
	t.Cleanup(s.Close)
	return s
}

func TestAppendEntryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a normalized income entry", func(t *testing.T) {
		ledgerStore := newTestLedger(t)
		uc := NewAppendEntryUseCase(ledgerStore)

		output, err := uc.Execute(ctx, AppendEntryInput{
			Date:   "2025-03-10",
			Type:   "income",
			Amount: "5000",
			Title:  "Salary",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Entry.Type != entity.EntryTypeIncome {
			t.Errorf("expected income, got %q", output.Entry.Type)
		}
		if output.Entry.ID == "" {
			t.Error("expected a generated id")
		}
		if output.Entry.Category != entity.DefaultCategory {
			t.Errorf("expected default category, got %q", output.Entry.Category)
		}

		got := ledgerStore.Snapshot()
		if !got.Income.Equal(decimal.RequireFromString("5000")) {
			t.Errorf("expected income 5000, got %s", got.Income)
		}
	})

	t.Run("rejects unparseable amounts as invalid", func(t *testing.T) {
		ledgerStore := newTestLedger(t)
		uc := NewAppendEntryUseCase(ledgerStore)

		_, err := uc.Execute(ctx, AppendEntryInput{Type: "expense", Amount: "abc"})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if got := ledgerStore.Snapshot(); len(got.Entries) != 0 {
			t.Errorf("expected no entries after rejection, got %d", len(got.Entries))
		}
	})

	t.Run("rejects zero and negative amounts", func(t *testing.T) {
		uc := NewAppendEntryUseCase(newTestLedger(t))

		for _, amount := range []string{"0", "-10"} {
			if _, err := uc.Execute(ctx, AppendEntryInput{Type: "expense", Amount: amount}); !errors.Is(err, domainerror.ErrInvalidAmount) {
				t.Errorf("amount %q: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("unrecognized type falls back to expense", func(t *testing.T) {
		uc := NewAppendEntryUseCase(newTestLedger(t))

		output, err := uc.Execute(ctx, AppendEntryInput{Type: "transfer", Amount: "10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Entry.Type != entity.EntryTypeExpense {
			t.Errorf("expected expense fallback, got %q", output.Entry.Type)
		}
	})

	t.Run("absent date defaults to now", func(t *testing.T) {
		uc := NewAppendEntryUseCase(newTestLedger(t))

		before := time.Now().UTC()
		output, err := uc.Execute(ctx, AppendEntryInput{Type: "income", Amount: "10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Entry.Date.Before(before) || output.Entry.Date.After(time.Now().UTC()) {
			t.Errorf("expected date near now, got %s", output.Entry.Date)
		}
	})

	t.Run("unparseable date is kept as the zero time", func(t *testing.T) {
		uc := NewAppendEntryUseCase(newTestLedger(t))

		output, err := uc.Execute(ctx, AppendEntryInput{Type: "income", Amount: "10", Date: "someday"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Entry.Date.IsZero() {
			t.Errorf("expected zero date, got %s", output.Entry.Date)
		}
	})
}
