package app

import (
	"fmt"
	"sort"

	"github.com/shashiranjanraj/vitrine/config"
	"github.com/shashiranjanraj/vitrine/internal/server"
	"github.com/shashiranjanraj/vitrine/pkg/cache"
	"github.com/shashiranjanraj/vitrine/pkg/database"
	"github.com/shashiranjanraj/vitrine/pkg/logger"
	"github.com/shashiranjanraj/vitrine/pkg/migration"
	"github.com/shashiranjanraj/vitrine/pkg/router"
)

// Serve boots config, logging, database and cache, then starts the HTTP
// server with the application's handler. A missing Redis is logged and
// tolerated; a missing database is fatal.
func (a *Application) Serve() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logger.Setup(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if err := database.Connect(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}
	return server.Start(a.buildHandler())
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

// MigrateStatus prints the applied/pending state of every migration.
func MigrateStatus() error {
	if err := bootDB(); err != nil {
		return err
	}
	return migration.New(database.DB).Status()
}

// Seed runs the registered seeders against a migrated database.
func (a *Application) Seed() error {
	if err := Migrate(); err != nil {
		return err
	}
	if len(a.seeders) == 0 {
		fmt.Println("No seeders registered.")
		return nil
	}
	for _, fn := range a.seeders {
		if err := fn(database.DB); err != nil {
			return err
		}
	}
	fmt.Printf("Seeding complete (%d seeders ran)\n", len(a.seeders))
	return nil
}

// RouteList prints every registered route, sorted by path.
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
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	fmt.Printf("%-8s  %-40s  %s\n", "METHOD", "PATH", "NAME")
	for _, ri := range routes {
		fmt.Printf("%-8s  %-40s  %s\n", ri.Method, ri.Path, ri.Name)
	}
	return nil
}

func bootDB() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return database.Connect()
}
