// Package ledger contains entry-ledger use cases.
package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-budgetmo/backend/internal/application/store"
	"github.com/e-budgetmo/backend/internal/domain/entity"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
	"github.com/e-budgetmo/backend/internal/domain/valueobject"
)

// AppendEntryInput represents a raw entry submission. Amount arrives as
// the raw string the collaborator captured; parse failures coerce to
// zero and are then rejected as invalid.
type AppendEntryInput struct {
	ID       string
	Date     string
	Type     string
	Amount   string
	Category string
	Title    string
	Note     string
}

// AppendEntryOutput represents the output of appending an entry.
type AppendEntryOutput struct {
	Entry *entity.Entry
}

// AppendEntryUseCase normalizes a raw submission and commits it to the
// ledger store.
type AppendEntryUseCase struct {
	ledger *store.LedgerStore
}

// NewAppendEntryUseCase creates a new AppendEntryUseCase instance.
func NewAppendEntryUseCase(ledger *store.LedgerStore) *AppendEntryUseCase {
	return &AppendEntryUseCase{
		ledger: ledger,
	}
}

// Execute validates, normalizes and appends the entry.
func (uc *AppendEntryUseCase) Execute(ctx context.Context, input AppendEntryInput) (*AppendEntryOutput, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		// Parse failure coerces to zero, which the positivity check
		// below rejects.
		amount = decimal.Zero
	}
	if !amount.IsPositive() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	entry := entity.NewEntry(
		input.ID,
		resolveDate(input.Date),
		resolveType(input.Type),
		amount,
		input.Category,
		input.Title,
		input.Note,
	)

	uc.ledger.Append(entry)

	return &AppendEntryOutput{Entry: entry}, nil
}

// resolveDate defaults an absent date to now. A present but unparseable
// date is kept as the zero time so the transaction view sorts it as
// oldest rather than inventing a timestamp.
func resolveDate(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}
	date, ok := valueobject.ParseDate(raw)
	if !ok {
		return time.Time{}
	}
	return date
}

// resolveType maps unrecognized types to expense rather than rejecting
// them. Clients only ever send the two known values.
func resolveType(raw string) entity.EntryType {
	if raw == string(entity.EntryTypeIncome) {
		return entity.EntryTypeIncome
	}
	return entity.EntryTypeExpense
}
