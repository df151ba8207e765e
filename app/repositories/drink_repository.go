package repositories

import (
	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"github.com/shashiranjanraj/vitrine/pkg/orm"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

// drinkSchema is the allow-list for dynamic energy-drink queries. Only the
// names declared here can ever reach a WHERE or ORDER BY clause.
var drinkSchema = query.Schema{
	Sortable: map[string]string{
		"id":        "id",
		"brand":     models.DrinkColBrand,
		"name":      models.DrinkColName,
		"volume_ml": models.DrinkColVolumeML,
		"price":     models.DrinkColPrice,
		"stock":     models.DrinkColStock,
	},
	Filterable: map[string]string{
		"brand":     models.DrinkColBrand,
		"volume_ml": models.DrinkColVolumeML,
	},
	Searchable: []string{models.DrinkColBrand, models.DrinkColName},
}

// DrinkRepository handles database operations for EnergyDrink.
type DrinkRepository struct{}

func NewDrinkRepository() *DrinkRepository {
	return &DrinkRepository{}
}

// List returns the [skip, skip+limit) window of the filtered, sorted table.
func (r *DrinkRepository) List(p query.Params) ([]models.EnergyDrink, orm.Pagination, error) {
	scope, err := drinkSchema.Scope(p)
	if err != nil {
		return nil, orm.Pagination{}, err
	}

	skip, limit := p.Window()
	var drinks []models.EnergyDrink
	page, err := orm.DB().Model(&models.EnergyDrink{}).Scope(scope).GetWithWindow(&drinks, skip, limit)
	if err != nil {
		return nil, page, apperr.Unavailable(err)
	}
	return drinks, page, nil
}

// Find looks up a drink by primary key.
func (r *DrinkRepository) Find(id uint) (models.EnergyDrink, error) {
	var drink models.EnergyDrink
	err := orm.DB().Model(&models.EnergyDrink{}).Where("id = ?", id).First(&drink)
	return drink, translate("energy drink", err)
}

// Create persists a new drink and fills in its generated fields.
func (r *DrinkRepository) Create(drink *models.EnergyDrink) error {
	if err := orm.DB().Create(drink); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

// UpdateFields applies a partial update: only the supplied columns change.
// An empty map is a no-op that returns the row as-is.
func (r *DrinkRepository) UpdateFields(id uint, fields map[string]interface{}) (models.EnergyDrink, error) {
	drink, err := r.Find(id)
	if err != nil {
		return drink, err
	}
	if len(fields) == 0 {
		return drink, nil
	}

	if err := orm.DB().Model(&drink).Updates(fields); err != nil {
		return drink, apperr.Unavailable(err)
	}
	return r.Find(id)
}

// Delete removes a drink permanently.
func (r *DrinkRepository) Delete(id uint) error {
	drink, err := r.Find(id)
	if err != nil {
		return err
	}
	if err := orm.DB().Delete(&drink); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

// Brands returns the sorted distinct brand names.
func (r *DrinkRepository) Brands() ([]string, error) {
	var brands []string
	if err := orm.DB().Model(&models.EnergyDrink{}).Distinct(models.DrinkColBrand, &brands); err != nil {
		return nil, apperr.Unavailable(err)
	}
	return brands, nil
}
