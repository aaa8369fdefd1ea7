package main

import (
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/mangamart/pkg/app"
)

// mangamart migrate — apply pending migrations.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Migrate()
	},
}

// mangamart migrate:rollback — undo the last batch.
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the most recent migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.MigrateRollback()
	},
}

// mangamart migrate:status — show applied vs pending.
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of every registered migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.MigrateStatus()
	},
}

// mangamart seed — run the registered seeders.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo products",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Seed()
	},
}
