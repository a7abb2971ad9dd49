package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/deppfellow/lotto-api/internal/config"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLite is the file-backed Gateway.
//
// The handle is limited to one open connection: SQLite serializes writers
// anyway and a single connection keeps :memory: databases coherent.
type SQLite struct {
	db            *sql.DB
	log           *zerolog.Logger
	slowThreshold time.Duration
}

var _ Gateway = (*SQLite)(nil)

// NewSQLite wraps an already opened handle. No schema work is done.
func NewSQLite(db *sql.DB, logger *zerolog.Logger, slowThreshold time.Duration) *SQLite {
	return &SQLite{db: db, log: logger, slowThreshold: slowThreshold}
}

// OpenSQLite opens the file named by cfg.Database.DSN, pings it and applies
// the embedded schema.
func OpenSQLite(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*SQLite, error) {
	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		dsn = filepath.Clean(dsn)
	}
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := MigrateSQLite(ctx, logger, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Info().Str("driver", config.DriverSQLite).Str("path", cfg.Database.DSN).Msg("connected to the database")

	return NewSQLite(sqlDB, logger, slowQueryThreshold(cfg)), nil
}

var placeholder = regexp.MustCompile(`\$\d+`)

// rebind turns $1..$n placeholders into SQLite's positional ?. Statements
// must reference their parameters in argument order.
func rebind(query string) string {
	return placeholder.ReplaceAllString(query, "?")
}

func (s *SQLite) trace(query string, args []any, start time.Time, err error) {
	elapsed := time.Since(start)

	event := s.log.Debug()
	if err != nil {
		event = s.log.Error().Err(err)
	}
	event.Str("sql", query).
		Interface("args", args).
		Dur("duration", elapsed).
		Msg("query")

	logSlowQuery(s.log, s.slowThreshold, query, elapsed)
}

func (s *SQLite) Query(ctx context.Context, query string, args []any, each func(Scanner) error) (err error) {
	query = rebind(query)
	start := time.Now()
	defer func() { s.trace(query, args, start, err) }()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return storageError("query", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := each(rows); err != nil {
			return storageError("scan", err)
		}
	}

	return storageError("query", rows.Err())
}

func (s *SQLite) QueryOne(ctx context.Context, query string, args []any, dest ...any) (bool, error) {
	query = rebind(query)
	start := time.Now()

	err := s.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if err == sql.ErrNoRows {
		s.trace(query, args, start, nil)
		return false, nil
	}
	s.trace(query, args, start, err)
	if err != nil {
		return false, storageError("query one", err)
	}
	return true, nil
}

func (s *SQLite) Insert(ctx context.Context, query string, args ...any) (WriteResult, error) {
	query = rebind(query)
	start := time.Now()

	var id int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&id)
	s.trace(query, args, start, err)
	if err != nil {
		return WriteResult{}, storageError("insert", err)
	}
	return WriteResult{RowsAffected: 1, InsertedID: id}, nil
}

func (s *SQLite) Exec(ctx context.Context, query string, args ...any) (WriteResult, error) {
	query = rebind(query)
	start := time.Now()

	res, err := s.db.ExecContext(ctx, query, args...)
	s.trace(query, args, start, err)
	if err != nil {
		return WriteResult{}, storageError("exec", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return WriteResult{}, storageError("exec", err)
	}
	return WriteResult{RowsAffected: n}, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return storageError("ping", s.db.PingContext(ctx))
}

func (s *SQLite) Close() error {
	s.log.Info().Msg("closing sqlite database")
	return s.db.Close()
}
