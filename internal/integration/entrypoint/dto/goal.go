// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/e-budgetmo/backend/internal/application/usecase/goal"
	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	ID           string      `json:"id,omitempty"`
	Title        string      `json:"title,omitempty"`
	Category     string      `json:"category,omitempty"`
	Note         string      `json:"note,omitempty"`
	TargetAmount json.Number `json:"targetAmount" binding:"required"`
	DueDate      string      `json:"dueDate" binding:"required"`
}

// AdjustGoalRequest represents the request body for a goal adjustment.
type AdjustGoalRequest struct {
	Amount json.Number `json:"amount" binding:"required"`
	Action string      `json:"action" binding:"required,oneof=add withdraw"`
}

// GoalTransactionResponse represents one sub-ledger record.
type GoalTransactionResponse struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Action string  `json:"action"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           string                    `json:"id"`
	Title        string                    `json:"title"`
	Category     string                    `json:"category"`
	Note         string                    `json:"note,omitempty"`
	TargetAmount float64                   `json:"targetAmount"`
	DueDate      string                    `json:"dueDate"`
	Current      float64                   `json:"current"`
	Progress     float64                   `json:"progress"`
	PastDue      bool                      `json:"pastDue"`
	Transactions []GoalTransactionResponse `json:"transactions"`
}

// GoalGroupResponse is one category section of the goals screen.
type GoalGroupResponse struct {
	Category string         `json:"category"`
	Goals    []GoalResponse `json:"goals"`
}

// GoalListResponse represents the grouped goal list.
type GoalListResponse struct {
	Groups []GoalGroupResponse `json:"groups"`
}

// ToGoalResponse converts a domain Goal to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	txs := make([]GoalTransactionResponse, len(g.Transactions))
	for i, tx := range g.Transactions {
		txs[i] = GoalTransactionResponse{
			ID:     tx.ID,
			Date:   tx.Date.UTC().Format(time.RFC3339Nano),
			Amount: tx.Amount.InexactFloat64(),
			Action: string(tx.Action),
		}
	}
	return GoalResponse{
		ID:           g.ID,
		Title:        g.Title,
		Category:     g.Category,
		Note:         g.Note,
		TargetAmount: g.TargetAmount.InexactFloat64(),
		DueDate:      g.DueDate,
		Current:      g.Current.InexactFloat64(),
		Progress:     g.Progress,
		PastDue:      g.IsPastDue(time.Now()),
		Transactions: txs,
	}
}

// ToGoalListResponse converts grouped use case output to its DTO.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	groups := make([]GoalGroupResponse, len(output.Groups))
	for i, group := range output.Groups {
		goals := make([]GoalResponse, len(group.Goals))
		for j, g := range group.Goals {
			goals[j] = ToGoalResponse(g)
		}
		groups[i] = GoalGroupResponse{
			Category: group.Category,
			Goals:    goals,
		}
	}
	return GoalListResponse{Groups: groups}
}
