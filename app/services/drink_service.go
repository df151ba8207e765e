// Package services holds the business rules that sit between the HTTP
// controllers and the repositories.
package services

import (
	"time"

	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/app/repositories"
	"github.com/shashiranjanraj/vitrine/config"
	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"github.com/shashiranjanraj/vitrine/pkg/cache"
	"github.com/shashiranjanraj/vitrine/pkg/orm"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

const drinkBrandsCacheKey = "vitrine:drinks:brands"

// DrinkService implements the energy-drink catalog operations.
type DrinkService struct {
	repo *repositories.DrinkRepository
}

func NewDrinkService() *DrinkService {
	return &DrinkService{repo: repositories.NewDrinkRepository()}
}

func (s *DrinkService) List(p query.Params) ([]models.EnergyDrink, orm.Pagination, error) {
	return s.repo.List(p)
}

func (s *DrinkService) Get(id uint) (models.EnergyDrink, error) {
	return s.repo.Find(id)
}

func (s *DrinkService) Create(drink *models.EnergyDrink) error {
	if err := s.repo.Create(drink); err != nil {
		return err
	}
	cache.Forget(drinkBrandsCacheKey)
	return nil
}

func (s *DrinkService) Update(id uint, fields map[string]interface{}) (models.EnergyDrink, error) {
	drink, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		return drink, err
	}
	if _, ok := fields[models.DrinkColBrand]; ok {
		cache.Forget(drinkBrandsCacheKey)
	}
	return drink, nil
}

func (s *DrinkService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	cache.Forget(drinkBrandsCacheKey)
	return nil
}

// Buy decrements stock by quantity. The order is rejected when the
// remaining stock does not cover it.
func (s *DrinkService) Buy(id uint, quantity int) (models.EnergyDrink, error) {
	if quantity <= 0 {
		return models.EnergyDrink{}, apperr.Invalid("quantity must be a positive integer")
	}

	drink, err := s.repo.Find(id)
	if err != nil {
		return drink, err
	}
	if drink.Stock < quantity {
		return drink, apperr.Invalid("Not enough stock available")
	}

	return s.repo.UpdateFields(id, map[string]interface{}{
		models.DrinkColStock: drink.Stock - quantity,
	})
}

// Brands returns the distinct brand names, served from Redis when warm.
func (s *DrinkService) Brands() ([]string, error) {
	var brands []string
	if cache.Get(drinkBrandsCacheKey, &brands) {
		return brands, nil
	}

	brands, err := s.repo.Brands()
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(config.FacetCacheTTLSeconds()) * time.Second
	cache.Set(drinkBrandsCacheKey, brands, ttl)
	return brands, nil
}
