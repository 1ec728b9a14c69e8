// Package statistics contains the monthly breakdown use cases.
package statistics

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// Breakdown slice keys.
const (
	KeyIncome   = "income"
	KeyExpenses = "expenses"
	KeyGoals    = "goals"
)

var sliceLabels = map[string]string{
	KeyIncome:   "Income",
	KeyExpenses: "Expenses",
	KeyGoals:    "Goals",
}

// GetMonthlyStatsInput selects the calendar month to aggregate.
type GetMonthlyStatsInput struct {
	Year  int
	Month time.Month
}

// StatsSlice is one slice of the monthly breakdown.
type StatsSlice struct {
	Key          string
	Label        string
	Value        decimal.Decimal
	Percent      float64
	PercentLabel string
}

// GetMonthlyStatsOutput is the month-scoped breakdown. RemainingBalance
// is income - expenses - goals for the month, not the all-time running
// balance. IsEmpty signals the neutral-chart case where the month has
// neither income nor expenses; it is a presentation hint, not part of
// the numeric contract.
type GetMonthlyStatsOutput struct {
	Slices           []StatsSlice
	RemainingBalance decimal.Decimal
	IsEmpty          bool
}

// GetMonthlyStatsUseCase derives the monthly income/expense/goal
// breakdown by filtering both stores' timestamped records.
type GetMonthlyStatsUseCase struct {
	ledger *store.LedgerStore
	goals  *store.GoalStore
}

// NewGetMonthlyStatsUseCase creates a new GetMonthlyStatsUseCase instance.
func NewGetMonthlyStatsUseCase(ledger *store.LedgerStore, goals *store.GoalStore) *GetMonthlyStatsUseCase {
	return &GetMonthlyStatsUseCase{
		ledger: ledger,
		goals:  goals,
	}
}

// Execute computes the breakdown for the selected month.
func (uc *GetMonthlyStatsUseCase) Execute(ctx context.Context, input GetMonthlyStatsInput) (*GetMonthlyStatsOutput, error) {
	incomeVal := decimal.Zero
	expenseVal := decimal.Zero

	for _, entry := range uc.ledger.Snapshot().Entries {
		if !inMonth(entry.Date, input.Year, input.Month) {
			continue
		}
		switch entry.Type {
		case entity.EntryTypeIncome:
			incomeVal = incomeVal.Add(entry.Amount)
		case entity.EntryTypeExpense:
			expenseVal = expenseVal.Add(entry.Amount)
		}
	}

	// Goal slice counts only positive (contribution) amounts for the
	// month; withdrawals do not reduce it.
	goalsVal := decimal.Zero
	for _, goal := range uc.goals.List() {
		for _, tx := range goal.Transactions {
			if !inMonth(tx.Date, input.Year, input.Month) {
				continue
			}
			if tx.Amount.IsPositive() {
				goalsVal = goalsVal.Add(tx.Amount)
			}
		}
	}

	total := incomeVal.Add(expenseVal).Add(goalsVal)

	output := &GetMonthlyStatsOutput{
		Slices: []StatsSlice{
			makeSlice(KeyIncome, incomeVal, total),
			makeSlice(KeyExpenses, expenseVal, total),
			makeSlice(KeyGoals, goalsVal, total),
		},
		RemainingBalance: incomeVal.Sub(expenseVal).Sub(goalsVal),
		IsEmpty:          incomeVal.Add(expenseVal).IsZero(),
	}
	return output, nil
}

func makeSlice(key string, value, total decimal.Decimal) StatsSlice {
	percent := 0.0
	if total.IsPositive() {
		percent, _ = value.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	}
	return StatsSlice{
		Key:          key,
		Label:        sliceLabels[key],
		Value:        value,
		Percent:      percent,
		PercentLabel: FormatPercent(percent),
	}
}

func inMonth(date time.Time, year int, month time.Month) bool {
	if date.IsZero() {
		return false
	}
	return date.Year() == year && date.Month() == month
}

// FormatPercent renders a percentage with at most 2 decimal places,
// stripping trailing zeros: 12.30 -> "12.3", 25.00 -> "25".
func FormatPercent(p float64) string {
	fixed := strconv.FormatFloat(p, 'f', 2, 64)
	rounded, err := strconv.ParseFloat(fixed, 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
