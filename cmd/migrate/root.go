package main

import (
	"io/fs"

	"github.com/Astemirdum/book-review/books/migrations"
	"github.com/Astemirdum/book-review/pkg/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type migrateFunc func(db *sqlx.DB, migrations fs.FS) error

func newRootCmd() *cobra.Command {
	var cfg postgres.DB

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the books database schema",
		Long: `migrate applies the embedded goose migrations of the books service.

Connection settings come from DB_* environment variables or a .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return envconfig.Process("", &cfg)
		},
	}

	cmd.AddCommand(
		newMigrateCmd(&cfg, "up", "Apply all pending migrations", postgres.MigrateUp),
		newMigrateCmd(&cfg, "down", "Roll back the latest migration", postgres.MigrateDown),
		newMigrateCmd(&cfg, "status", "Print the state of every migration", postgres.MigrateStatus),
	)
	return cmd
}

func newMigrateCmd(cfg *postgres.DB, use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := postgres.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return errors.Wrap(run(db, migrations.MigrationFiles), use)
		},
	}
}
