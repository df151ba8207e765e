package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/app/routes"
	"github.com/shashiranjanraj/vitrine/database/seeders"
	"github.com/shashiranjanraj/vitrine/pkg/app"
)

// buildApplication assembles the same Application the server binary runs,
// so CLI commands and the serve path share one configuration.
func buildApplication() *app.Application {
	return app.New().
		Routes(routes.RegisterAPI).
		AutoMigrate(&models.EnergyDrink{}, &models.Car{}, &models.Sneaker{}).
		Seeders(seeders.RunAll)
}

// vitrine migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Running migrations…")
		return app.Migrate()
	},
}

// vitrine migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.MigrateRollback()
	},
}

// vitrine migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.MigrateStatus()
	},
}

// vitrine seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return buildApplication().Seed()
	},
}
