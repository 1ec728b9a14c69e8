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

// goalRepository implements adapter.GoalRepository by serializing the
// whole collection as one JSON array under the goals key.
type goalRepository struct {
	kv  adapter.KeyValueStore
	key string
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(kv adapter.KeyValueStore, key string) adapter.GoalRepository {
	return &goalRepository{
		kv:  kv,
		key: key,
	}
}

// Load restores the persisted goal collection.
func (r *goalRepository) Load(ctx context.Context) ([]*entity.Goal, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageLoad,
			"failed to load goals",
			err,
		)
	}
	if !ok {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageLoad,
			"no goals persisted",
			domainerror.ErrStateNotFound,
		)
	}

	var stored []model.GoalModel
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageDecode,
			"failed to decode goals",
			domainerror.ErrStateCorrupt,
		)
	}

	goals := make([]*entity.Goal, len(stored))
	for i, gm := range stored {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Save overwrites the persisted goal collection.
func (r *goalRepository) Save(ctx context.Context, goals []*entity.Goal) error {
	stored := make([]model.GoalModel, len(goals))
	for i, goal := range goals {
		stored[i] = model.GoalFromEntity(goal)
	}

	encoded, err := json.Marshal(stored)
	if err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageEncode,
			"failed to encode goals",
			err,
		)
	}
	if err := r.kv.Set(ctx, r.key, string(encoded)); err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageSave,
			"failed to save goals",
			err,
		)
	}
	return nil
}
