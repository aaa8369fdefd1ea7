package app

// pkg/app/commands.go — implementations for all CLI sub-commands.
// These are called from Application.Run() and from the mangamart CLI.

import (
	"fmt"

	"github.com/shashiranjanraj/mangamart/config"
	"github.com/shashiranjanraj/mangamart/database/seeders"
	"github.com/shashiranjanraj/mangamart/pkg/cache"
	"github.com/shashiranjanraj/mangamart/pkg/database"
	"github.com/shashiranjanraj/mangamart/pkg/logger"
	"github.com/shashiranjanraj/mangamart/pkg/migration"
	"github.com/shashiranjanraj/mangamart/pkg/router"
	"github.com/shashiranjanraj/mangamart/pkg/storage"
)

// Serve boots config, database, cache and storage, then starts the
// HTTP server with the Application's handler.
func (a *Application) Serve() error {
	if err := boot(); err != nil {
		return err
	}
	return startServer(a)
}

// Migrate runs all pending migrations.
func Migrate() error {
	if err := bootDB(); err != nil {
		return err
	}
	return migration.New(database.DB).Run()
}

// MigrateRollback reverses the last migration batch.
func MigrateRollback() error {
	if err := bootDB(); err != nil {
		return err
	}
	return migration.New(database.DB).Rollback()
}

// MigrateStatus prints migration status.
func MigrateStatus() error {
	if err := bootDB(); err != nil {
		return err
	}
	return migration.New(database.DB).Status()
}

// Seed runs every seeder registered in database/seeders.
func Seed() error {
	if err := bootDB(); err != nil {
		return err
	}
	return seeders.RunAll(database.DB)
}

// RouteList prints all registered routes.
func (a *Application) RouteList() error {
	r := router.New()
	for _, fn := range a.routesFns {
		fn(r)
	}

	routes := r.Routes()
	if len(routes) == 0 {
		fmt.Println("No routes registered.")
		return nil
	}

	fmt.Printf("%-8s  %-50s  %s\n", "METHOD", "PATH", "NAME")
	fmt.Println(func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = '-'
		}
		return string(b)
	}(80))
	for _, ri := range routes {
		fmt.Printf("%-8s  %-50s  %s\n", ri.Method, ri.Path, ri.Name)
	}
	return nil
}

// boot brings up everything the HTTP server needs. The database is
// mandatory; Redis and S3 degrade gracefully when unreachable.
func boot() error {
	if err := bootDB(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, sessions disabled", "error", err)
	}
	storage.Connect()
	return nil
}

// bootDB loads config and connects to the database.
func bootDB() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return database.Connect()
}
