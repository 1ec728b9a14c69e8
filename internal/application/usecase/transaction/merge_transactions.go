// Package transaction contains the merged transaction view use cases.
package transaction

import (
	"context"
	"sort"
	"time"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
)

// MergeTransactionsOutput is the unified, de-duplicated, newest-first
// transaction list.
type MergeTransactionsOutput struct {
	Entries []*entity.Entry
}

// MergeTransactionsUseCase merges ledger entries with goal sub-ledger
// records into a single presentation list. Goal adjustments normally
// have a mirrored ledger entry already (see the adjust use case), so
// candidates synthesized from goal transactions are de-duplicated on
// (date, |amount|, title, category) to avoid double-counting.
type MergeTransactionsUseCase struct {
	ledger *store.LedgerStore
	goals  *store.GoalStore
}

// NewMergeTransactionsUseCase creates a new MergeTransactionsUseCase instance.
func NewMergeTransactionsUseCase(ledger *store.LedgerStore, goals *store.GoalStore) *MergeTransactionsUseCase {
	return &MergeTransactionsUseCase{
		ledger: ledger,
		goals:  goals,
	}
}

// Execute builds the merged list.
func (uc *MergeTransactionsUseCase) Execute(ctx context.Context) (*MergeTransactionsOutput, error) {
	seen := make(map[string]struct{})
	merged := []*entity.Entry{}

	for _, entry := range uc.ledger.Snapshot().Entries {
		seen[dedupKey(entry)] = struct{}{}
		merged = append(merged, entry)
	}

	for _, goal := range uc.goals.List() {
		for _, tx := range goal.Transactions {
			candidate := &entity.Entry{
				ID:       tx.ID,
				Date:     tx.Date,
				Type:     candidateType(tx),
				Amount:   tx.Amount.Abs(),
				Category: goal.Category,
				Title:    goal.Title,
			}
			key := dedupKey(candidate)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, candidate)
		}
	}

	// Newest first; zero (missing/unparseable) dates sink to the
	// bottom as the oldest possible timestamp.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	return &MergeTransactionsOutput{Entries: merged}, nil
}

// candidateType mirrors the adjust semantics: a positive sub-ledger
// amount was cash committed to the goal (expense), a negative one was
// cash returned (income).
func candidateType(tx entity.GoalTransaction) entity.EntryType {
	if tx.Amount.IsPositive() {
		return entity.EntryTypeExpense
	}
	return entity.EntryTypeIncome
}

func dedupKey(entry *entity.Entry) string {
	return entry.Date.UTC().Format(time.RFC3339Nano) + "|" + entry.Amount.Abs().String() + "|" + entry.Title + "|" + entry.Category
}
