package migrations

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/pkg/migration"
	"gorm.io/gorm"
)

type createCars struct{}

func (createCars) Up(db *gorm.DB) error {
	return db.Migrator().CreateTable(&models.Car{})
}

func (createCars) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Car{})
}

func init() {
	migration.Register("002_create_cars", createCars{})
}
