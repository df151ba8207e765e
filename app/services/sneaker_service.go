package services

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/app/repositories"
	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"github.com/shashiranjanraj/vitrine/pkg/orm"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

// SneakerService implements the sneaker catalog operations.
type SneakerService struct {
	repo *repositories.SneakerRepository
}

func NewSneakerService() *SneakerService {
	return &SneakerService{repo: repositories.NewSneakerRepository()}
}

func (s *SneakerService) List(p query.Params) ([]models.Sneaker, orm.Pagination, error) {
	return s.repo.List(p)
}

func (s *SneakerService) Get(id uint) (models.Sneaker, error) {
	return s.repo.Find(id)
}

func (s *SneakerService) Create(sneaker *models.Sneaker) error {
	return s.repo.Create(sneaker)
}

func (s *SneakerService) Update(id uint, fields map[string]interface{}) (models.Sneaker, error) {
	return s.repo.UpdateFields(id, fields)
}

func (s *SneakerService) Delete(id uint) error {
	return s.repo.Delete(id)
}

// Rate overwrites the sneaker's rating. Values outside [0, 5] are rejected
// before anything is stored.
func (s *SneakerService) Rate(id uint, rating float64) (models.Sneaker, error) {
	if rating < 0 || rating > 5 {
		return models.Sneaker{}, apperr.Invalid("rating must be between 0 and 5")
	}
	return s.repo.UpdateFields(id, map[string]interface{}{
		models.SneakerColRating: rating,
	})
}
