// Package requests defines the request bodies of the catalogue API.
//
// Create inputs use plain fields. Update inputs use pointer fields so a
// partial update can tell "field absent from the request" apart from "field
// supplied with its zero value"; Fields() converts whatever was supplied
// into a column→value map the repository applies as-is.
package requests

import "github.com/shashiranjanraj/vitrine/app/models"

// CreateDrink is the POST /energy-drinks/ body. Stock defaults to zero when
// omitted.
type CreateDrink struct {
	Brand    string `json:"brand"     validate:"required,min=1,max=255"`
	Name     string `json:"name"      validate:"required,min=1,max=255"`
	VolumeML int    `json:"volume_ml" validate:"required,gt=0"`
	Price    int    `json:"price"     validate:"gte=0"`
	Stock    int    `json:"stock"     validate:"gte=0"`
}

// Entity builds the row to persist.
func (in CreateDrink) Entity() models.EnergyDrink {
	return models.EnergyDrink{
		Brand:    in.Brand,
		Name:     in.Name,
		VolumeML: in.VolumeML,
		Price:    in.Price,
		Stock:    in.Stock,
	}
}

// UpdateDrink is the PUT /energy-drinks/{id} body.
type UpdateDrink struct {
	Brand    *string `json:"brand"     validate:"nullable,min=1,max=255"`
	Name     *string `json:"name"      validate:"nullable,min=1,max=255"`
	VolumeML *int    `json:"volume_ml" validate:"nullable,gt=0"`
	Price    *int    `json:"price"     validate:"nullable,gte=0"`
	Stock    *int    `json:"stock"     validate:"nullable,gte=0"`
}

// Fields returns the columns the request actually supplied.
func (in UpdateDrink) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Brand != nil {
		fields[models.DrinkColBrand] = *in.Brand
	}
	if in.Name != nil {
		fields[models.DrinkColName] = *in.Name
	}
	if in.VolumeML != nil {
		fields[models.DrinkColVolumeML] = *in.VolumeML
	}
	if in.Price != nil {
		fields[models.DrinkColPrice] = *in.Price
	}
	if in.Stock != nil {
		fields[models.DrinkColStock] = *in.Stock
	}
	return fields
}
