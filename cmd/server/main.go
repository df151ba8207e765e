package main

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/app/routes"
	"github.com/shashiranjanraj/vitrine/database/seeders"
	"github.com/shashiranjanraj/vitrine/pkg/app"

	_ "github.com/shashiranjanraj/vitrine/database/migrations"
)

func main() {
	app.New().
		Routes(routes.RegisterAPI).
		AutoMigrate(&models.EnergyDrink{}, &models.Car{}, &models.Sneaker{}).
		Seeders(seeders.RunAll).
		Run()
}
