// Package persistence implements repository interfaces over the
// durable key-value store.
package persistence

import (
	"context"
	"encoding/json"

	"github.com/e-budgetmo/backend/internal/application/adapter"
	"github.com/e-budgetmo/backend/internal/domain/entity"
	domainerror "github.com/e-budgetmo/backend/internal/domain/error"
	"github.com/e-budgetmo/backend/internal/integration/persistence/model"
)

// financeRepository implements adapter.FinanceRepository by serializing
// the whole aggregate as one JSON document under the finance key.
type financeRepository struct {
	kv  adapter.KeyValueStore
	key string
}

// NewFinanceRepository creates a new finance repository instance.
func NewFinanceRepository(kv adapter.KeyValueStore, key string) adapter.FinanceRepository {
	return &financeRepository{
		kv:  kv,
		key: key,
	}
}

// Load restores the persisted aggregate.
func (r *financeRepository) Load(ctx context.Context) (*entity.FinanceAggregate, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageLoad,
			"failed to load finance state",
			err,
		)
	}
	if !ok {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageLoad,
			"no finance state persisted",
			domainerror.ErrStateNotFound,
		)
	}

	var stored model.FinanceModel
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageDecode,
			"failed to decode finance state",
			domainerror.ErrStateCorrupt,
		)
	}
	return stored.ToEntity(), nil
}

// Save overwrites the persisted aggregate.
func (r *financeRepository) Save(ctx context.Context, aggregate *entity.FinanceAggregate) error {
	encoded, err := json.Marshal(model.FinanceFromEntity(aggregate))
	if err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageEncode,
			"failed to encode finance state",
			err,
		)
	}
	if err := r.kv.Set(ctx, r.key, string(encoded)); err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageSave,
			"failed to save finance state",
			err,
		)
	}
	return nil
}
