// Package migrations contains the schema migrations, applied in
// registration order by the migration runner.
package migrations

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/pkg/migration"
	"gorm.io/gorm"
)

type createEnergyDrinks struct{}

func (createEnergyDrinks) Up(db *gorm.DB) error {
	return db.Migrator().CreateTable(&models.EnergyDrink{})
}

func (createEnergyDrinks) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.EnergyDrink{})
}

func init() {
	migration.Register("001_create_energy_drinks", createEnergyDrinks{})
}
