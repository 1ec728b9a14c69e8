// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"strings"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// CategoryOrder is the fixed display order for goal groups. Goals whose
// category does not exactly match one of these labels land in the
// OthersCategory catch-all (case-sensitive match).
var CategoryOrder = []string{"Savings", "Emergency", "Vacation", "Education", "Investment", "Bills"}

// OthersCategory is the catch-all group label.
const OthersCategory = "Others"

// GoalGroup is one display section: a category label and its goals in
// collection order.
type GoalGroup struct {
	Category string
	Goals    []*entity.Goal
}

// ListGoalsOutput represents the grouped goal list.
type ListGoalsOutput struct {
	Groups []GoalGroup
}

// ListGoalsUseCase produces the grouped goal list for the goals screen.
type ListGoalsUseCase struct {
	goals *store.GoalStore
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goals *store.GoalStore) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goals: goals,
	}
}

// Execute groups goals by the fixed category list plus Others. Every
// group is present in the output even when empty, matching the screen
// that renders a placeholder per section.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	grouped := make(map[string][]*entity.Goal, len(CategoryOrder)+1)
	for _, category := range CategoryOrder {
		grouped[category] = []*entity.Goal{}
	}
	grouped[OthersCategory] = []*entity.Goal{}

	for _, goal := range uc.goals.List() {
		category := strings.TrimSpace(goal.Category)
		if _, known := grouped[category]; known && category != OthersCategory {
			grouped[category] = append(grouped[category], goal)
		} else {
			grouped[OthersCategory] = append(grouped[OthersCategory], goal)
		}
	}

	groups := make([]GoalGroup, 0, len(CategoryOrder)+1)
	for _, category := range append(append([]string{}, CategoryOrder...), OthersCategory) {
		groups = append(groups, GoalGroup{
			Category: category,
			Goals:    grouped[category],
		})
	}

	return &ListGoalsOutput{Groups: groups}, nil
}
