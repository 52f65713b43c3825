package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/xapes/xma-slots/migrations"
)

// Migrate applies every pending embedded migration and returns the resulting
// schema version.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"duration", r.Duration)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	slog.Default().Info(LogMsgSchemaUpToDate, "version", version)
	return version, nil
}
