// Package app provides the MangaMart application runner.
//
// # Usage
//
//	package main
//
//	import (
//	    "github.com/shashiranjanraj/mangamart/app/models"
//	    "github.com/shashiranjanraj/mangamart/app/routes"
//	    "github.com/shashiranjanraj/mangamart/pkg/app"
//	    _ "github.com/shashiranjanraj/mangamart/database/migrations"
//	    _ "github.com/shashiranjanraj/mangamart/database/seeders"
//	)
//
//	func main() {
//	    app.New().
//	        Routes(routes.Register).
//	        AutoMigrate(&models.Product{}).
//	        Run()
//	}
//
// Then run with the mangamart CLI or directly:
//
//	mangamart serve
//	mangamart migrate
//	mangamart seed
//	mangamart route:list
//
// Or build and run directly:
//
//	go build -o mangamart-server ./cmd/server && ./mangamart-server serve
package app

import (
	"fmt"
	"os"

	"github.com/shashiranjanraj/mangamart/pkg/router"
)

// Application is the central configuration object for a MangaMart build.
// Build one with New(), attach your configuration, then call Run().
type Application struct {
	routesFns []func(*router.Router)
	models    []interface{}
}

// New creates a new Application instance with sensible defaults.
func New() *Application {
	return &Application{}
}

// Routes registers a route-registration callback that will be called when
// the HTTP kernel is built. You may call Routes() multiple times; all
// callbacks are executed in order.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// AutoMigrate adds GORM models that will be auto-migrated on server start.
// Pass model pointers: app.New().AutoMigrate(&Product{})
func (a *Application) AutoMigrate(models ...interface{}) *Application {
	a.models = append(a.models, models...)
	return a
}

// Run reads os.Args and dispatches to the appropriate command.
// This is the ONLY function you need to call from your main().
func (a *Application) Run() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	var err error
	switch cmd {
	case "serve", "start", "run", "s":
		err = a.Serve()
	case "migrate":
		err = Migrate()
	case "migrate:rollback", "migrate:down":
		err = MigrateRollback()
	case "migrate:status":
		err = MigrateStatus()
	case "seed":
		err = Seed()
	case "route:list", "routes":
		err = a.RouteList()
	case "help", "--help", "-h":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n\nRun with --help for usage.\n", cmd)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`MangaMart — product catalog backend

Usage:
  <program> <command>

  (or: mangamart <command>  /  go run ./cmd/server <command>)

Commands:
  serve            Start the HTTP server  (aliases: start, run)
  migrate          Run all pending database migrations
  migrate:rollback Rollback the last batch of migrations
  migrate:status   Show migration status
  seed             Run all registered database seeders
  route:list       List registered API routes

`)
}
