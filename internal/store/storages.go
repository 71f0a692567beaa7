package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/logger"
)

// Storages groups the repositories built over a single database connection.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the SQLite database located by cfg.DB.URL.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds the repositories over the connection.
func NewStorages(ctx context.Context, cfg config.Storage, hasher PasswordHasher, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, hasher, logger),
		ItemRepository: NewItemRepository(db, logger),
		db:             db,
	}, nil
}

// Close closes the underlying database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
