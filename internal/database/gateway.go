// Package database is the single entry point to the relational store.
//
// It owns the process-wide store handle and executes parameterized
// statements on behalf of the repositories. Two backends implement the
// Gateway contract:
//   - Postgres: a pgx connection pool with optional New Relic tracing and
//     local SQL logging, schema applied by tern.
//   - SQLite: database/sql over modernc.org/sqlite with a single open
//     connection, schema applied from embedded files.
//
// Statements are always written with $1..$n placeholders and arguments are
// bound by the driver, never interpolated.
package database

import (
	"context"
	"fmt"

	"github.com/deppfellow/lotto-api/internal/config"
	loggerConfig "github.com/deppfellow/lotto-api/internal/logger"
	"github.com/rs/zerolog"
)

// Scanner reads the current row into dest. pgx.Rows, pgx.Row, *sql.Rows
// and *sql.Row all satisfy it.
type Scanner interface {
	Scan(dest ...any) error
}

// WriteResult reports the effect of a write statement.
//
// InsertedID is only set by Insert; zero means no identifier was produced.
type WriteResult struct {
	RowsAffected int64
	InsertedID   int64
}

// Gateway executes parameterized statements against the store.
//
// Every failure reported by the driver comes back as *StorageError.
// Nothing is retried and the handle is never reconnected.
type Gateway interface {
	// Query runs a multi-row read and calls each once per row.
	// Zero matching rows is not an error.
	Query(ctx context.Context, query string, args []any, each func(Scanner) error) error

	// QueryOne scans a single row into dest. It returns false, nil when no
	// row matches.
	QueryOne(ctx context.Context, query string, args []any, dest ...any) (bool, error)

	// Insert runs an INSERT ... RETURNING <id> statement.
	Insert(ctx context.Context, query string, args ...any) (WriteResult, error)

	// Exec runs an UPDATE or DELETE statement.
	Exec(ctx context.Context, query string, args ...any) (WriteResult, error)

	Ping(ctx context.Context) error
	Close() error
}

// StorageError is a statement rejected by the store.
//
// Error returns the driver's native message unchanged, so it can be handed
// to clients verbatim.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// Open connects to the store configured in cfg, verifies the connection and
// brings the schema up to date. Callers treat any error as fatal.
func Open(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (Gateway, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg, logger)

	case config.DriverPostgres:
		if err := Migrate(ctx, logger, cfg); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return New(cfg, logger, loggerService)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
