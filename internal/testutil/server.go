package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/deppfellow/lotto-api/internal/config"
	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/deppfellow/lotto-api/internal/logger"
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/stretchr/testify/require"
)

// TestConfig returns a test-environment config pointing at a fresh SQLite
// file inside t.TempDir().
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Primary.Env = "test"
	cfg.Server.RateLimit = 0
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.DSN = filepath.Join(t.TempDir(), "lotto.db")
	cfg.Observability = config.DefaultObservabilityConfig()
	cfg.Observability.Environment = cfg.Primary.Env
	return cfg
}

// NewSQLiteServer returns a Server backed by a migrated, empty SQLite
// store. The store is closed when the test ends.
func NewSQLiteServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := TestConfig(t)
	log := MakeNoopLogger()

	db, err := database.OpenSQLite(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &server.Server{
		Config:        cfg,
		Logger:        log,
		LoggerService: &logger.LoggerService{},
		DB:            db,
	}
}

// NewMockServer returns a Server whose store is gw.
func NewMockServer(t *testing.T, gw database.Gateway) *server.Server {
	t.Helper()

	return &server.Server{
		Config:        TestConfig(t),
		Logger:        MakeNoopLogger(),
		LoggerService: &logger.LoggerService{},
		DB:            gw,
	}
}
