package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/xapes/xma-slots/internal/database"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupDatabase starts a throwaway Postgres and applies the embedded migrations.
// Returns a nil pool when Docker is unavailable.
func setupDatabase(ctx context.Context) (pool *pgxpool.Pool, terminate func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
			pool = nil
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
		return nil, nil
	}
	terminate = func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return nil, terminate
	}

	pool, err = database.NewPool(connStr, 20, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return nil, terminate
	}

	if _, err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		pool.Close()
		return nil, terminate
	}
	return pool, terminate
}

func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE players, game_history`); err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}
}
