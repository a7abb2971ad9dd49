package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/lotto-api/internal/config"
	loggerConfig "github.com/deppfellow/lotto-api/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database is the PostgreSQL Gateway. It wraps the pgx connection pool
// and a logger for lifecycle messages.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

var _ Gateway = (*Database)(nil)

// multiTracer fans pgx trace callbacks out to several tracers.
//
// pgx has a single Tracer slot in ConnConfig; runtime interface checks
// decide which callbacks each tracer receives.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

type queryStartKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

// slowQueryTracer warns about statements slower than threshold.
type slowQueryTracer struct {
	threshold time.Duration
	log       *zerolog.Logger
}

func (st *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, at: time.Now()})
}

func (st *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	logSlowQuery(st.log, st.threshold, start.sql, time.Since(start.at))
}

func logSlowQuery(log *zerolog.Logger, threshold time.Duration, query string, elapsed time.Duration) {
	if threshold <= 0 || elapsed < threshold {
		return
	}
	log.Warn().
		Str("sql", query).
		Dur("duration", elapsed).
		Dur("threshold", threshold).
		Msg("slow query")
}

// DatabasePingTimeout is how many seconds startup waits for the first ping.
const DatabasePingTimeout = 10

// New creates a PostgreSQL connection pool with instrumentation.
//
// Behavior:
//   - Parse the configured DSN into a pgxpool config
//   - Attach the New Relic tracer if the agent is running
//   - In local env: attach the SQL tracelogger
//   - Attach the slow query tracer when a threshold is configured
//   - Create pool, ping it, and return Database
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if cfg.Database.MaxConns > 0 {
		pgxPoolConfig.MaxConns = cfg.Database.MaxConns
	}

	var tracers []any

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	// Very noisy, local only.
	if cfg.IsLocal() {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		})
	}

	if threshold := slowQueryThreshold(cfg); threshold > 0 {
		tracers = append(tracers, &slowQueryTracer{threshold: threshold, log: logger})
	}

	switch len(tracers) {
	case 0:
	case 1:
		pgxPoolConfig.ConnConfig.Tracer = tracers[0].(pgx.QueryTracer)
	default:
		pgxPoolConfig.ConnConfig.Tracer = &multiTracer{tracers: tracers}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("driver", config.DriverPostgres).Msg("connected to the database")

	return database, nil
}

func slowQueryThreshold(cfg *config.Config) time.Duration {
	if cfg.Observability == nil {
		return 0
	}
	return cfg.Observability.Logging.SlowQueryThreshold
}

func (db *Database) Query(ctx context.Context, query string, args []any, each func(Scanner) error) error {
	rows, err := db.Pool.Query(ctx, query, args...)
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

func (db *Database) QueryOne(ctx context.Context, query string, args []any, dest ...any) (bool, error) {
	err := db.Pool.QueryRow(ctx, query, args...).Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageError("query one", err)
	}
	return true, nil
}

func (db *Database) Insert(ctx context.Context, query string, args ...any) (WriteResult, error) {
	var id int64
	if err := db.Pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return WriteResult{}, storageError("insert", err)
	}
	return WriteResult{RowsAffected: 1, InsertedID: id}, nil
}

func (db *Database) Exec(ctx context.Context, query string, args ...any) (WriteResult, error) {
	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return WriteResult{}, storageError("exec", err)
	}
	return WriteResult{RowsAffected: tag.RowsAffected()}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return storageError("ping", db.Pool.Ping(ctx))
}

// Close closes the connection pool. pgxpool.Close never fails.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
