package migrations

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/pkg/migration"
	"gorm.io/gorm"
)

type createSneakers struct{}

func (createSneakers) Up(db *gorm.DB) error {
	return db.Migrator().CreateTable(&models.Sneaker{})
}

func (createSneakers) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Sneaker{})
}

func init() {
	migration.Register("003_create_sneakers", createSneakers{})
}
