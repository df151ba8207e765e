// Package app wires configuration, storage, routing and middleware into a
// runnable application.
//
// Minimal usage:
//
//	app.New().
//	    Routes(routes.RegisterAPI).
//	    AutoMigrate(&models.EnergyDrink{}).
//	    Run()
//
// The resulting binary understands serve, migrate, migrate:rollback,
// migrate:status, seed and route:list as its first argument; serve is the
// default.
package app

import (
	"fmt"
	"os"

	"github.com/shashiranjanraj/vitrine/pkg/router"
	"gorm.io/gorm"
)

// SeederFunc seeds the database. Seeders must be idempotent.
type SeederFunc func(db *gorm.DB) error

// Application is the central configuration object. Build one with New(),
// attach routes and models, then call Run().
type Application struct {
	routesFns []func(*router.Router)
	models    []interface{}
	seeders   []SeederFunc
}

func New() *Application {
	return &Application{}
}

// Routes registers a route-registration callback, invoked when the HTTP
// handler is built. Multiple callbacks run in registration order.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// AutoMigrate adds GORM model pointers that are auto-migrated on serve.
func (a *Application) AutoMigrate(models ...interface{}) *Application {
	a.models = append(a.models, models...)
	return a
}

// Seeders registers seeder functions run by the seed command.
func (a *Application) Seeders(fns ...SeederFunc) *Application {
	a.seeders = append(a.seeders, fns...)
	return a
}

// Run reads os.Args and dispatches to the matching command.
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
		err = a.Seed()
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
	fmt.Print(`vitrine — inventory API

Usage:
  <program> <command>

Commands:
  serve            Start the HTTP server  (aliases: start, run)
  migrate          Run all pending database migrations
  migrate:rollback Rollback the last batch of migrations
  migrate:status   Show migration status
  seed             Run all registered database seeders
  route:list       List registered API routes

`)
}
