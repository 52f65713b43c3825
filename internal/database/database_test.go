package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xapes/xma-slots/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool("://not a url", 5, time.Minute, time.Minute)
	assert.ErrorContains(t, err, ErrMsgFailedToParseConnString)
}

// TestPool_ConnectionsReleased verifies connections are returned to the pool
func TestPool_ConnectionsReleased(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "Failed to acquire connection on iteration %d", i)

		var result int
		assert.NoError(t, conn.QueryRow(ctx, "SELECT 1").Scan(&result))
		assert.Equal(t, 1, result)

		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
}

func TestMigrate(t *testing.T) {
	requireDB(t)
	checker := leaktest.NewGoroutineChecker(t)

	pool, err := NewPool(testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)

	ctx := context.Background()
	version, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	t.Run("idempotent", func(t *testing.T) {
		again, err := Migrate(ctx, pool)
		require.NoError(t, err)
		assert.Equal(t, version, again)
	})

	t.Run("reservation columns exist", func(t *testing.T) {
		var count int
		err := pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM information_schema.columns
			WHERE table_name = 'players' AND column_name LIKE 'pending_collect_%'`).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("balances cannot go negative", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO players (wallet_address, unclaimed_rewards) VALUES ('neg', -1)`)
		assert.Error(t, err)
	})

	pool.Close()
	checker.Check(2)
}
