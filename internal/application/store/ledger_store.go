package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/application/adapter"
	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// LedgerStore owns the ordered entry collection and its running
// aggregates. The in-memory state is authoritative; every mutation
// enqueues an asynchronous full-state save. The mutex exists because
// the HTTP layer serves handlers on concurrent goroutines, even though
// the product model is a single interactive writer.
type LedgerStore struct {
	mu      sync.RWMutex
	income  decimal.Decimal
	expense decimal.Decimal
	balance decimal.Decimal
	entries []*entity.Entry

	repo  adapter.FinanceRepository
	queue *saveQueue
}

// NewLedgerStore creates a ledger store in the zero state.
func NewLedgerStore(repo adapter.FinanceRepository) *LedgerStore {
	return &LedgerStore{
		income:  decimal.Zero,
		expense: decimal.Zero,
		balance: decimal.Zero,
		entries: []*entity.Entry{},
		repo:    repo,
		queue:   newSaveQueue("ledger"),
	}
}

// Hydrate restores prior persisted state. Absence or decode failure is
// treated as "no prior state": the store keeps its zero state and the
// failure is logged, never surfaced.
func (s *LedgerStore) Hydrate(ctx context.Context) {
	aggregate, err := s.repo.Load(ctx)
	if err != nil {
		slog.Warn("Starting ledger from zero state", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.income = aggregate.Income
	s.expense = aggregate.Expense
	s.balance = aggregate.Balance
	s.entries = aggregate.Entries
}

// Append inserts a normalized entry at the front of the collection
// (most-recent-first) and atomically updates the running aggregates.
// Persistence is fire-and-forget.
func (s *LedgerStore) Append(entry *entity.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch entry.Type {
	case entity.EntryTypeIncome:
		s.income = s.income.Add(entry.Amount)
		s.balance = s.balance.Add(entry.Amount)
	default:
		s.expense = s.expense.Add(entry.Amount)
		s.balance = s.balance.Sub(entry.Amount)
	}
	s.entries = append([]*entity.Entry{entry}, s.entries...)

	snapshot := s.snapshotLocked()
	s.queue.enqueue(func(ctx context.Context) error {
		return s.repo.Save(ctx, snapshot)
	})
}

// Snapshot returns the current finance aggregate. Entries are shared by
// pointer; they are immutable once created.
func (s *LedgerStore) Snapshot() *entity.FinanceAggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *LedgerStore) snapshotLocked() *entity.FinanceAggregate {
	entries := make([]*entity.Entry, len(s.entries))
	copy(entries, s.entries)
	return &entity.FinanceAggregate{
		Income:  s.income,
		Expense: s.expense,
		Balance: s.balance,
		Entries: entries,
	}
}

// Close drains pending saves. Call once mutations have stopped.
func (s *LedgerStore) Close() {
	s.queue.close()
}
