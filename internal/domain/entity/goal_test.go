package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewGoal(t *testing.T) {
	target := decimal.RequireFromString("5000")

	t.Run("applies title and category defaults", func(t *testing.T) {
		goal := NewGoal("", "", "", "", target, "2030-01-01")
		if goal.Title != DefaultGoalTitle {
			t.Errorf("expected %q, got %q", DefaultGoalTitle, goal.Title)
		}
		if goal.Category != DefaultCategory {
			t.Errorf("expected %q, got %q", DefaultCategory, goal.Category)
		}
	})

	t.Run("starts at zero with an empty sub-ledger", func(t *testing.T) {
		goal := NewGoal("", "Laptop", "Savings", "", target, "2030-01-01")
		if !goal.Current.IsZero() {
			t.Errorf("expected zero current, got %s", goal.Current)
		}
		if goal.Progress != 0 {
			t.Errorf("expected zero progress, got %f", goal.Progress)
		}
		if len(goal.Transactions) != 0 {
			t.Errorf("expected empty transactions, got %d", len(goal.Transactions))
		}
	})
}

func TestGoalRecomputeProgress(t *testing.T) {
	t.Run("progress stays within [0, 1]", func(t *testing.T) {
		goal := NewGoal("", "Trip", "Vacation", "", decimal.RequireFromString("1000"), "2030-01-01")

		goal.Current = decimal.RequireFromString("250")
		goal.RecomputeProgress()
		if goal.Progress != 0.25 {
			t.Errorf("expected 0.25, got %f", goal.Progress)
		}

		goal.Current = decimal.RequireFromString("1800")
		goal.RecomputeProgress()
		if goal.Progress != 1 {
			t.Errorf("expected progress capped at 1, got %f", goal.Progress)
		}
	})

	t.Run("keeps the stored fallback when target is not positive", func(t *testing.T) {
		goal := &Goal{TargetAmount: decimal.Zero, Progress: 0.4}
		goal.Current = decimal.RequireFromString("100")
		goal.RecomputeProgress()
		if goal.Progress != 0.4 {
			t.Errorf("expected stored progress 0.4, got %f", goal.Progress)
		}
	})
}

func TestGoalIsPastDue(t *testing.T) {
	asOf := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	t.Run("a 2020 due date is past-due", func(t *testing.T) {
		goal := &Goal{DueDate: "2020-01-01"}
		if !goal.IsPastDue(asOf) {
			t.Error("expected goal to be past-due")
		}
	})

	t.Run("same day is not past-due", func(t *testing.T) {
		goal := &Goal{DueDate: "2026-08-28"}
		if goal.IsPastDue(asOf) {
			t.Error("expected same-day due date not to be past-due")
		}
	})

	t.Run("future slash dates are not past-due", func(t *testing.T) {
		goal := &Goal{DueDate: "01/01/30"}
		if goal.IsPastDue(asOf) {
			t.Error("expected future due date not to be past-due")
		}
	})

	t.Run("unparseable due dates are never past-due", func(t *testing.T) {
		goal := &Goal{DueDate: "whenever"}
		if goal.IsPastDue(asOf) {
			t.Error("expected unparseable due date not to be past-due")
		}
	})
}

func TestGoalClone(t *testing.T) {
	goal := NewGoal("", "Trip", "Vacation", "", decimal.RequireFromString("1000"), "2030-01-01")
	goal.Transactions = append(goal.Transactions, GoalTransaction{
		ID:     "tx-1",
		Date:   time.Now().UTC(),
		Amount: decimal.RequireFromString("100"),
		Action: GoalActionAdd,
	})

	clone := goal.Clone()
	clone.Transactions[0].ID = "mutated"

	if goal.Transactions[0].ID != "tx-1" {
		t.Error("expected clone mutation not to reach the original sub-ledger")
	}
}
