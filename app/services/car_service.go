package services

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/app/repositories"
	"github.com/shashiranjanraj/vitrine/pkg/orm"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

// CarService implements the car catalog operations.
type CarService struct {
	repo *repositories.CarRepository
}

func NewCarService() *CarService {
	return &CarService{repo: repositories.NewCarRepository()}
}

func (s *CarService) List(p query.Params) ([]models.Car, orm.Pagination, error) {
	return s.repo.List(p)
}

// Get counts the read as a view, so every fetch bumps the counter by one.
func (s *CarService) Get(id uint) (models.Car, error) {
	return s.repo.IncrementViews(id)
}

func (s *CarService) Create(car *models.Car) error {
	return s.repo.Create(car)
}

func (s *CarService) Update(id uint, fields map[string]interface{}) (models.Car, error) {
	return s.repo.UpdateFields(id, fields)
}

func (s *CarService) Delete(id uint) error {
	return s.repo.Delete(id)
}
