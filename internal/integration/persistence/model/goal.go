// Package model defines the persisted JSON document layouts.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// GoalTransactionModel is the stored shape of a goal sub-ledger record.
type GoalTransactionModel struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Action string  `json:"action"`
}

// GoalModel is the stored shape of a goal under the goals storage key.
type GoalModel struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Category     string                 `json:"category"`
	Note         string                 `json:"note,omitempty"`
	Target       float64                `json:"target"`
	Due          string                 `json:"due"`
	Current      float64                `json:"current"`
	Progress     float64                `json:"progress"`
	Transactions []GoalTransactionModel `json:"transactions"`
}

// GoalFromEntity converts a domain Goal to its stored shape.
func GoalFromEntity(g *entity.Goal) GoalModel {
	txs := make([]GoalTransactionModel, len(g.Transactions))
	for i, tx := range g.Transactions {
		txs[i] = GoalTransactionModel{
			ID:     tx.ID,
			Date:   tx.Date.UTC().Format(time.RFC3339Nano),
			Amount: tx.Amount.InexactFloat64(),
			Action: string(tx.Action),
		}
	}
	return GoalModel{
		ID:           g.ID,
		Title:        g.Title,
		Category:     g.Category,
		Note:         g.Note,
		Target:       g.TargetAmount.InexactFloat64(),
		Due:          g.DueDate,
		Current:      g.Current.InexactFloat64(),
		Progress:     g.Progress,
		Transactions: txs,
	}
}

// ToEntity converts the stored shape back to a domain Goal.
func (m GoalModel) ToEntity() *entity.Goal {
	txs := make([]entity.GoalTransaction, len(m.Transactions))
	for i, tm := range m.Transactions {
		date := time.Time{}
		if parsed, err := time.Parse(time.RFC3339Nano, tm.Date); err == nil {
			date = parsed
		}
		txs[i] = entity.GoalTransaction{
			ID:     tm.ID,
			Date:   date,
			Amount: decimal.NewFromFloat(tm.Amount),
			Action: entity.GoalAction(tm.Action),
		}
	}
	return &entity.Goal{
		ID:           m.ID,
		Title:        m.Title,
		Category:     m.Category,
		Note:         m.Note,
		TargetAmount: decimal.NewFromFloat(m.Target),
		DueDate:      m.Due,
		Current:      decimal.NewFromFloat(m.Current),
		Progress:     m.Progress,
		Transactions: txs,
	}
}
