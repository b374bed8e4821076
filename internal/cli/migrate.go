package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/osse101/CoffeeGarden_Go/internal/config"
	"github.com/osse101/CoffeeGarden_Go/internal/database"
)

// EnvDatabaseURL overrides the DB_* variables for migrate commands
const EnvDatabaseURL = "DATABASE_URL"

const migrateTimeout = 2 * time.Minute

type migrateOptions struct {
	dsn string
}

// NewMigrateCommand creates the migrate command with up, down and status.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, revert or inspect database migrations",
	}
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "postgres connection string (default $DATABASE_URL, then DB_* variables)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), opts, func(ctx context.Context, db *pgxpool.Pool) error {
				version, err := database.Migrate(ctx, db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), opts, func(ctx context.Context, db *pgxpool.Pool) error {
				version, err := database.MigrateDown(ctx, db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), opts, func(ctx context.Context, db *pgxpool.Pool) error {
				states, err := database.MigrationStatus(ctx, db)
				if err != nil {
					return err
				}
				return writeResult(cmd.OutOrStdout(), rootOpts.Format, states, func(w io.Writer) error {
					return renderMigrationStatus(w, states)
				})
			})
		},
	})

	return cmd
}

func renderMigrationStatus(w io.Writer, states []database.MigrationState) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range states {
		state, at := "pending", "-"
		if s.Applied {
			state, at = "applied", s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Version, state, at, s.Path)
	}
	return tw.Flush()
}

func (o *migrateOptions) connString() (string, error) {
	if o.dsn != "" {
		return o.dsn, nil
	}
	if dsn := os.Getenv(EnvDatabaseURL); dsn != "" {
		return dsn, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.GetDBConnString(), nil
}

func withPool(ctx context.Context, opts *migrateOptions, fn func(context.Context, *pgxpool.Pool) error) error {
	dsn, err := opts.connString()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  dsn,
		MaxConns:    2,
		MaxConnIdle: config.DefaultDBMaxConnIdle,
		MaxConnLife: config.DefaultDBMaxConnLife,
		AppName:     config.DefaultServiceName + "-migrate",
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, pool)
}
