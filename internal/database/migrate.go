package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/CoffeeGarden_Go/migrations"
)

// MigrationState is one row of MigrationStatus
type MigrationState struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

func newProvider(pool *pgxpool.Pool) (*goose.Provider, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return provider, nil
}

// Migrate applies every pending embedded migration and returns the resulting version
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	provider, err := newProvider(pool)
	if err != nil {
		return 0, err
	}
	defer provider.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	if len(results) == 0 {
		slog.Default().Info(LogMsgSchemaUpToDate)
	}

	return provider.GetDBVersion(ctx)
}

// MigrateDown reverts the most recent migration and returns the resulting version
func MigrateDown(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	provider, err := newProvider(pool)
	if err != nil {
		return 0, err
	}
	defer provider.Close()

	result, err := provider.Down(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToRevertMigration, err)
	}
	if result != nil {
		slog.Default().Info(LogMsgMigrationReverted, "version", result.Source.Version, "path", result.Source.Path)
	}

	return provider.GetDBVersion(ctx)
}

// MigrationStatus lists every embedded migration and whether it is applied
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]MigrationState, error) {
	provider, err := newProvider(pool)
	if err != nil {
		return nil, err
	}
	defer provider.Close()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadMigrationLog, err)
	}

	out := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationState{
			Version:   s.Source.Version,
			Path:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}
