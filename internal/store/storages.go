package store

import (
	"context"
	"fmt"

	"github.com/lettercraft/backend/internal/config"
	"github.com/lettercraft/backend/internal/logger"
)

// Storages aggregates all repositories over a shared database connection.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies schema migrations and wires up
// every repository. The returned Storages owns the connection; call Close
// when shutting down.
func NewStorages(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
