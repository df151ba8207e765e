package repositories

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"github.com/shashiranjanraj/vitrine/pkg/orm"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

var sneakerSchema = query.Schema{
	Sortable: map[string]string{
		"id":     "id",
		"brand":  models.SneakerColBrand,
		"model":  models.SneakerColModel,
		"price":  models.SneakerColPrice,
		"rating": models.SneakerColRating,
	},
	Filterable: map[string]string{
		"brand": models.SneakerColBrand,
		"price": models.SneakerColPrice,
	},
	Searchable: []string{models.SneakerColBrand, models.SneakerColModel},
}

// SneakerRepository handles database operations for Sneaker.
type SneakerRepository struct{}

func NewSneakerRepository() *SneakerRepository {
	return &SneakerRepository{}
}

func (r *SneakerRepository) List(p query.Params) ([]models.Sneaker, orm.Pagination, error) {
	scope, err := sneakerSchema.Scope(p)
	if err != nil {
		return nil, orm.Pagination{}, err
	}

	skip, limit := p.Window()
	var sneakers []models.Sneaker
	page, err := orm.DB().Model(&models.Sneaker{}).Scope(scope).GetWithWindow(&sneakers, skip, limit)
	if err != nil {
		return nil, page, apperr.Unavailable(err)
	}
	return sneakers, page, nil
}

func (r *SneakerRepository) Find(id uint) (models.Sneaker, error) {
	var sneaker models.Sneaker
	err := orm.DB().Model(&models.Sneaker{}).Where("id = ?", id).First(&sneaker)
	return sneaker, translate("sneaker", err)
}

func (r *SneakerRepository) Create(sneaker *models.Sneaker) error {
	if err := orm.DB().Create(sneaker); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (r *SneakerRepository) UpdateFields(id uint, fields map[string]interface{}) (models.Sneaker, error) {
	sneaker, err := r.Find(id)
	if err != nil {
		return sneaker, err
	}
	if len(fields) == 0 {
		return sneaker, nil
	}

	if err := orm.DB().Model(&sneaker).Updates(fields); err != nil {
		return sneaker, apperr.Unavailable(err)
	}
	return r.Find(id)
}

func (r *SneakerRepository) Delete(id uint) error {
	sneaker, err := r.Find(id)
	if err != nil {
		return err
	}
	if err := orm.DB().Delete(&sneaker); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}
