package repositories

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"github.com/shashiranjanraj/vitrine/pkg/orm"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

var carSchema = query.Schema{
	Sortable: map[string]string{
		"id":    "id",
		"make":  models.CarColMake,
		"model": models.CarColModel,
		"year":  models.CarColYear,
		"color": models.CarColColor,
		"views": models.CarColViews,
	},
	Filterable: map[string]string{
		"make": models.CarColMake,
		"year": models.CarColYear,
	},
	Searchable: []string{models.CarColMake, models.CarColModel},
}

// CarRepository handles database operations for Car.
type CarRepository struct{}

func NewCarRepository() *CarRepository {
	return &CarRepository{}
}

func (r *CarRepository) List(p query.Params) ([]models.Car, orm.Pagination, error) {
	scope, err := carSchema.Scope(p)
	if err != nil {
		return nil, orm.Pagination{}, err
	}

	skip, limit := p.Window()
	var cars []models.Car
	page, err := orm.DB().Model(&models.Car{}).Scope(scope).GetWithWindow(&cars, skip, limit)
	if err != nil {
		return nil, page, apperr.Unavailable(err)
	}
	return cars, page, nil
}

func (r *CarRepository) Find(id uint) (models.Car, error) {
	var car models.Car
	err := orm.DB().Model(&models.Car{}).Where("id = ?", id).First(&car)
	return car, translate("car", err)
}

func (r *CarRepository) Create(car *models.Car) error {
	if err := orm.DB().Create(car); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *CarRepository) UpdateFields(id uint, fields map[string]interface{}) (models.Car, error) {
	car, err := r.Find(id)
	if err != nil {
		return car, err
	}
	if len(fields) == 0 {
		return car, nil
	}

	if err := orm.DB().Model(&car).Updates(fields); err != nil {
		return car, apperr.Unavailable(err)
	}
	return r.Find(id)
}

func (r *CarRepository) Delete(id uint) error {
	car, err := r.Find(id)
	if err != nil {
		return err
	}
	if err := orm.DB().Delete(&car); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

// IncrementViews bumps the view counter and returns the fresh row.
func (r *CarRepository) IncrementViews(id uint) (models.Car, error) {
	car, err := r.Find(id)
	if err != nil {
		return car, err
	}
	fields := map[string]interface{}{models.CarColViews: car.Views + 1}
	if err := orm.DB().Model(&car).Updates(fields); err != nil {
		return car, apperr.Unavailable(err)
	}
	car.Views++
	return car, nil
}
