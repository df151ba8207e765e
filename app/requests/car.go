package requests

import "github.com/shashiranjanraj/vitrine/app/models"

// CreateCar is the POST /cars/ body. Views always starts at zero and cannot
// be supplied.
type CreateCar struct {
	Make  string `json:"make"  validate:"required,min=1,max=255"`
	Model string `json:"model" validate:"required,min=1,max=255"`
	Year  int    `json:"year"  validate:"required,between=1886,2100"`
	Color string `json:"color" validate:"required,min=1,max=100"`
}

// Entity builds the row to persist. (Not named Model — that's a field here.)
func (in CreateCar) Entity() models.Car {
	return models.Car{
		Make:  in.Make,
		Model: in.Model,
		Year:  in.Year,
		Color: in.Color,
	}
}

// UpdateCar is the PUT /cars/{id} body. Views is deliberately not updatable.
type UpdateCar struct {
	Make  *string `json:"make"  validate:"nullable,min=1,max=255"`
	Model *string `json:"model" validate:"nullable,min=1,max=255"`
	Year  *int    `json:"year"  validate:"nullable,between=1886,2100"`
	Color *string `json:"color" validate:"nullable,min=1,max=100"`
}

func (in UpdateCar) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Make != nil {
		fields[models.CarColMake] = *in.Make
	}
	if in.Model != nil {
		fields[models.CarColModel] = *in.Model
	}
	if in.Year != nil {
		fields[models.CarColYear] = *in.Year
	}
	if in.Color != nil {
		fields[models.CarColColor] = *in.Color
	}
	return fields
}
