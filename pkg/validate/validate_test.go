package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type createInput struct {
	Brand    string  `json:"brand" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	VolumeML int     `json:"volume_ml" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(createInput{Brand: "X", Name: "Y", VolumeML: 250, Price: 1.99, Stock: 5})
	assert.False(t, HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := Struct(createInput{VolumeML: 250})
	assert.Contains(t, errs, "brand")
	assert.Contains(t, errs, "name")
}

func TestStructBounds(t *testing.T) {
	errs := Struct(createInput{Brand: "X", Name: "Y", VolumeML: 0, Price: -1})
	assert.Contains(t, errs, "volume_ml")
	assert.Contains(t, errs, "price")
}

type updateInput struct {
	Brand  *string  `json:"brand" validate:"nullable,min=1"`
	Price  *float64 `json:"price" validate:"nullable,gte=0"`
	Rating *float64 `json:"rating" validate:"nullable,between=0,5"`
	Color  *string  `json:"color" validate:"nullable,in=red,blue,white"`
}

func TestNullableSkipsAbsentFields(t *testing.T) {
	// A fully empty partial update is valid: nothing was supplied.
	errs := Struct(updateInput{})
	assert.False(t, HasErrors(errs))
}

func TestNullableValidatesSuppliedFields(t *testing.T) {
	bad := -2.0
	errs := Struct(updateInput{Price: &bad})
	assert.Contains(t, errs, "price")

	ok := 1.5
	errs = Struct(updateInput{Price: &ok})
	assert.False(t, HasErrors(errs))
}

func TestNullableValidatesSuppliedZeroValues(t *testing.T) {
	// A pointer to a zero value was still supplied by the client; the
	// remaining rules must run against it rather than being skipped.
	type partialCar struct {
		Make *string `json:"make" validate:"nullable,min=1"`
		Year *int    `json:"year" validate:"nullable,between=1886,2100"`
	}
	empty := ""
	zero := 0
	errs := Struct(partialCar{Make: &empty, Year: &zero})
	assert.Contains(t, errs, "make")
	assert.Contains(t, errs, "year")

	noVolume := 0
	errs = Struct(struct {
		VolumeML *int `json:"volume_ml" validate:"nullable,gt=0"`
	}{VolumeML: &noVolume})
	assert.Contains(t, errs, "volume_ml")
}

func TestBetweenRule(t *testing.T) {
	high := 7.0
	errs := Struct(updateInput{Rating: &high})
	assert.Contains(t, errs, "rating")

	mid := 4.5
	errs = Struct(updateInput{Rating: &mid})
	assert.False(t, HasErrors(errs))

	edge := 5.0
	errs = Struct(updateInput{Rating: &edge})
	assert.False(t, HasErrors(errs))
}

func TestInRule(t *testing.T) {
	green := "green"
	errs := Struct(updateInput{Color: &green})
	assert.Contains(t, errs, "color")

	red := "red"
	errs = Struct(updateInput{Color: &red})
	assert.False(t, HasErrors(errs))
}

func TestYearBetween(t *testing.T) {
	type carInput struct {
		Year int `json:"year" validate:"required,between=1886,2100"`
	}
	assert.True(t, HasErrors(Struct(carInput{Year: 1700})))
	assert.True(t, HasErrors(Struct(carInput{Year: 3000})))
	assert.False(t, HasErrors(Struct(carInput{Year: 2021})))
}
