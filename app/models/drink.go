package models

import "time"

// EnergyDrink is one row of the energy_drinks catalogue.
type EnergyDrink struct {
	ID        uint      `gorm:"primaryKey"                          json:"id"`
	Brand     string    `gorm:"size:255;not null;index"             json:"brand"`
	Name      string    `gorm:"size:255;not null"                   json:"name"`
	VolumeML  int       `gorm:"column:volume_ml;not null"           json:"volume_ml"`
	Price     int       `gorm:"not null"                            json:"price"`
	Stock     int       `gorm:"not null;default:0"                  json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EnergyDrink) TableName() string { return "energy_drinks" }

// Column names of the energy_drinks table. Dynamic query parts (filters,
// sorting, partial updates) reference these instead of raw strings.
const (
	DrinkColBrand    = "brand"
	DrinkColName     = "name"
	DrinkColVolumeML = "volume_ml"
	DrinkColPrice    = "price"
	DrinkColStock    = "stock"
)
