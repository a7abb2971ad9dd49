//go:build integration

package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/lotto-api/internal/config"
	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "lotto",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "lotto_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://lotto:password@%s:%s/lotto_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestPostgresGateway(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.Primary.Env = "test"
	cfg.Database.DSN = dsn
	cfg.Observability = config.DefaultObservabilityConfig()
	log := zerolog.Nop()

	gw, err := database.Open(ctx, cfg, &log, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })

	// Second migration run is a no-op.
	require.NoError(t, database.Migrate(ctx, &log, cfg))

	res, err := gw.Insert(ctx,
		"INSERT INTO users (username, password, email, phone) VALUES ($1, $2, $3, $4) RETURNING user_id",
		"a", "p", "e", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.InsertedID)

	var username string
	found, err := gw.QueryOne(ctx, "SELECT username FROM users WHERE user_id = $1", []any{res.InsertedID}, &username)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a", username)

	found, err = gw.QueryOne(ctx, "SELECT username FROM users WHERE user_id = $1", []any{int64(999)}, &username)
	require.NoError(t, err)
	assert.False(t, found)

	upd, err := gw.Exec(ctx, "UPDATE users SET username = $1 WHERE user_id = $2", "b", res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.RowsAffected)

	del, err := gw.Exec(ctx, "DELETE FROM users WHERE user_id = $1", int64(999))
	require.NoError(t, err)
	assert.Zero(t, del.RowsAffected)

	_, err = gw.Insert(ctx,
		"INSERT INTO users (username, password, email, phone) VALUES ($1, $2, $3, $4) RETURNING user_id",
		"a", "p", nil, "1")
	var storageErr *database.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Contains(t, err.Error(), "SQLSTATE 23502")

	require.NoError(t, gw.Ping(ctx))
}
