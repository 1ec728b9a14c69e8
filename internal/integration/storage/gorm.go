// Package storage provides KeyValueStore backends for the durable
// string-keyed store the budgeting state persists to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/e-budgetmo/backend/config"
	"github.com/e-budgetmo/backend/internal/application/adapter"
)

// KVModel is the single-table layout backing the key-value store.
type KVModel struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM table name.
func (KVModel) TableName() string {
	return "kv_state"
}

// GormStore implements adapter.KeyValueStore on a GORM-managed kv
// table. The sqlite driver is the local-storage analogue the app
// defaults to; postgres serves deployments that want a server-side
// store.
type GormStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the sqlite-backed store.
func NewSQLiteStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	return newGormStore(db, "sqlite")
}

// NewPostgresStore connects to the postgres-backed store.
func NewPostgresStore(cfg *config.StorageConfig) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres store: %w", err)
	}
	return newGormStore(db, "postgres")
}

// NewGormStore wraps an existing GORM connection (used by tests).
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	return newGormStore(db, "custom")
}

func newGormStore(db *gorm.DB, driver string) (*GormStore, error) {
	if err := db.AutoMigrate(&KVModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}

	slog.Info("Key-value storage ready", "driver", driver)
	return &GormStore{db: db}, nil
}

// Get returns the value stored under key.
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row KVModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, result.Error
	}
	return row.Value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	row := KVModel{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row)
	return result.Error
}

// Ping reports backend availability.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ adapter.KeyValueStore = (*GormStore)(nil)
