package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/application/adapter"
	"github.com/e-budgetmo/backend/internal/domain/entity"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
)

// GoalStore owns the goal collection and each goal's contribution
// sub-ledger. Mutation and persistence semantics match LedgerStore.
type GoalStore struct {
	mu    sync.RWMutex
	goals []*entity.Goal

	repo  adapter.GoalRepository
	queue *saveQueue
}

// NewGoalStore creates an empty goal store.
func NewGoalStore(repo adapter.GoalRepository) *GoalStore {
	return &GoalStore{
		goals: []*entity.Goal{},
		repo:  repo,
		queue: newSaveQueue("goals"),
	}
}

// Hydrate restores prior persisted goals; absence or decode failure
// leaves the store empty and is logged only.
func (s *GoalStore) Hydrate(ctx context.Context) {
	goals, err := s.repo.Load(ctx)
	if err != nil {
		slog.Warn("Starting goals from zero state", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = goals
}

// Create inserts a new goal at the front of the collection.
func (s *GoalStore) Create(goal *entity.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = append([]*entity.Goal{goal}, s.goals...)
	s.enqueueSaveLocked()
}

// Adjust applies an add/withdraw of the given positive amount to the
// identified goal: withdraws clamp the running total at zero, progress
// is recomputed while the target is positive, and a signed
// GoalTransaction is appended to the sub-ledger. The caller validates
// the amount; an unknown id returns ErrGoalNotFound with no mutation.
func (s *GoalStore) Adjust(goalID string, amount decimal.Decimal, action entity.GoalAction, at time.Time) (*entity.Goal, *entity.GoalTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := s.findLocked(goalID)
	if goal == nil {
		return nil, nil, domainerror.ErrGoalNotFound
	}

	signed := amount
	if action == entity.GoalActionWithdraw {
		signed = amount.Neg()
		goal.Current = goal.Current.Sub(amount)
		if goal.Current.IsNegative() {
			goal.Current = decimal.Zero
		}
	} else {
		goal.Current = goal.Current.Add(amount)
	}
	goal.RecomputeProgress()

	tx := entity.GoalTransaction{
		ID:     uuid.NewString(),
		Date:   at,
		Amount: signed,
		Action: action,
	}
	goal.Transactions = append(goal.Transactions, tx)

	s.enqueueSaveLocked()
	return goal.Clone(), &tx, nil
}

// Delete removes the goal and its sub-ledger irreversibly. Past
// mirrored ledger entries are not retracted.
func (s *GoalStore) Delete(goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, goal := range s.goals {
		if goal.ID == goalID {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.enqueueSaveLocked()
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

// Find returns a copy of the identified goal.
func (s *GoalStore) Find(goalID string) (*entity.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal := s.findLocked(goalID)
	if goal == nil {
		return nil, domainerror.ErrGoalNotFound
	}
	return goal.Clone(), nil
}

// List returns copies of all goals in collection order
// (most-recently-created first).
func (s *GoalStore) List() []*entity.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]*entity.Goal, len(s.goals))
	for i, goal := range s.goals {
		goals[i] = goal.Clone()
	}
	return goals
}

func (s *GoalStore) findLocked(goalID string) *entity.Goal {
	for _, goal := range s.goals {
		if goal.ID == goalID {
			return goal
		}
	}
	return nil
}

func (s *GoalStore) enqueueSaveLocked() {
	snapshot := make([]*entity.Goal, len(s.goals))
	for i, goal := range s.goals {
		snapshot[i] = goal.Clone()
	}
	s.queue.enqueue(func(ctx context.Context) error {
		return s.repo.Save(ctx, snapshot)
	})
}

// Close drains pending saves. Call once mutations have stopped.
func (s *GoalStore) Close() {
	s.queue.close()
}
