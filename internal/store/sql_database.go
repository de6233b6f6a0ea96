package store

import (
	"database/sql"

	"github.com/lettercraft/backend/internal/logger"
	"github.com/lettercraft/backend/migrations"
)

// DB wraps the standard [sql.DB] connection pool with a structured logger.
// All repositories share a single DB instance.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations to the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
