package seeders

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"gorm.io/gorm"
)

func init() {
	Register(Seeder{Name: "catalog", Run: seedCatalog})
}

// seedCatalog inserts a sample inventory. It is idempotent: nothing is
// inserted when the drinks table already has rows.
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.EnergyDrink{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	drinks := []models.EnergyDrink{
		{Brand: "Red Bull", Name: "Original", VolumeML: 250, Price: 199, Stock: 120},
		{Brand: "Red Bull", Name: "Sugarfree", VolumeML: 250, Price: 199, Stock: 80},
		{Brand: "Monster", Name: "Energy", VolumeML: 500, Price: 249, Stock: 60},
		{Brand: "Celsius", Name: "Sparkling Orange", VolumeML: 355, Price: 279, Stock: 40},
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	cars := []models.Car{
		{Make: "Toyota", Model: "Corolla", Year: 2021, Color: "white"},
		{Make: "Tesla", Model: "Model 3", Year: 2023, Color: "red"},
		{Make: "Honda", Model: "Civic", Year: 2019, Color: "blue"},
	}
	if err := db.Create(&cars).Error; err != nil {
		return err
	}

	sneakers := []models.Sneaker{
		{Brand: "Nike", Model: "Air Max 90", Price: 130},
		{Brand: "Adidas", Model: "Samba", Price: 100},
		{Brand: "New Balance", Model: "990v6", Price: 200},
	}
	return db.Create(&sneakers).Error
}
