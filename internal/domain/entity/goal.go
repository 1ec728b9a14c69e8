// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/domain/valueobject"
)

// GoalAction represents the direction of a goal adjustment.
type GoalAction string

const (
	GoalActionAdd      GoalAction = "add"
	GoalActionWithdraw GoalAction = "withdraw"
)

// DefaultGoalTitle is the title assigned to goals created without one.
const DefaultGoalTitle = "New Goal"

// GoalTransaction is a signed add/withdraw record attached to a goal.
// Amount is positive for adds and negative for withdrawals.
type GoalTransaction struct {
	ID     string
	Date   time.Time
	Amount decimal.Decimal
	Action GoalAction
}

// Goal represents a savings target with its own contribution sub-ledger.
type Goal struct {
	ID           string
	Title        string
	Category     string
	Note         string
	TargetAmount decimal.Decimal
	// DueDate keeps the raw submitted value; it is parsed permissively
	// on demand so unparseable dates survive persistence round-trips.
	DueDate string
	Current decimal.Decimal
	// Progress is the stored fallback used when TargetAmount is not
	// positive; otherwise it is recomputed on every adjustment.
	Progress     float64
	Transactions []GoalTransaction
}

// NewGoal creates a normalized Goal with zero progress and an empty
// sub-ledger.
func NewGoal(id, title, category, note string, targetAmount decimal.Decimal, dueDate string) *Goal {
	if id == "" {
		id = uuid.NewString()
	}
	if title == "" {
		title = DefaultGoalTitle
	}
	if category == "" {
		category = DefaultCategory
	}

	return &Goal{
		ID:           id,
		Title:        title,
		Category:     category,
		Note:         note,
		TargetAmount: targetAmount,
		DueDate:      dueDate,
		Current:      decimal.Zero,
		Progress:     0,
		Transactions: []GoalTransaction{},
	}
}

// RecomputeProgress refreshes the derived progress value. When the
// target amount is positive, progress is min(1, current/target); the
// stored value acts as a fallback otherwise.
func (g *Goal) RecomputeProgress() {
	if !g.TargetAmount.IsPositive() {
		return
	}
	ratio, _ := g.Current.Div(g.TargetAmount).Float64()
	if ratio > 1 {
		ratio = 1
	}
	g.Progress = ratio
}

// IsPastDue reports whether the goal's due date (date-only) is strictly
// before asOf's date. Unparseable due dates are never past-due.
func (g *Goal) IsPastDue(asOf time.Time) bool {
	due, ok := valueobject.ParseDate(g.DueDate)
	if !ok {
		return false
	}
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	return dueDay.Before(asOfDay)
}

// Clone returns a deep copy of the goal, including its sub-ledger.
func (g *Goal) Clone() *Goal {
	clone := *g
	clone.Transactions = make([]GoalTransaction, len(g.Transactions))
	copy(clone.Transactions, g.Transactions)
	return &clone
}
