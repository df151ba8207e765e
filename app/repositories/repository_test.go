package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"github.com/shashiranjanraj/vitrine/pkg/database"
	"github.com/shashiranjanraj/vitrine/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupDB points the shared pool at a fresh in-memory database for the
// duration of one test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EnergyDrink{}, &models.Car{}, &models.Sneaker{}))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func seedDrinks(t *testing.T, repo *DrinkRepository) []models.EnergyDrink {
	t.Helper()
	drinks := []models.EnergyDrink{
		{Brand: "Red Bull", Name: "Original", VolumeML: 250, Price: 199, Stock: 10},
		{Brand: "Red Bull", Name: "Sugarfree", VolumeML: 250, Price: 199, Stock: 5},
		{Brand: "Monster", Name: "Energy", VolumeML: 500, Price: 249, Stock: 8},
		{Brand: "Celsius", Name: "Sparkling", VolumeML: 355, Price: 279, Stock: 3},
	}
	for i := range drinks {
		require.NoError(t, repo.Create(&drinks[i]))
	}
	return drinks
}

func TestDrinkList(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seedDrinks(t, repo)

	drinks, page, err := repo.List(query.Params{})
	require.NoError(t, err)
	assert.Len(t, drinks, 4)
	assert.EqualValues(t, 4, page.Total)
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, query.DefaultLimit, page.Limit)
}

func TestDrinkListPagination(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seedDrinks(t, repo)

	drinks, page, err := repo.List(query.Params{Skip: 2, Limit: 2, SortBy: "id"})
	require.NoError(t, err)
	assert.Len(t, drinks, 2)
	assert.EqualValues(t, 4, page.Total)

	// Window past the end: empty page, total unchanged.
	drinks, page, err = repo.List(query.Params{Skip: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, drinks)
	assert.EqualValues(t, 4, page.Total)
}

func TestDrinkListFilter(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seedDrinks(t, repo)

	drinks, page, err := repo.List(query.Params{
		Filters: []query.Filter{{Field: "brand", Op: query.OpEq, Value: "Red Bull"}},
	})
	require.NoError(t, err)
	assert.Len(t, drinks, 2)
	assert.EqualValues(t, 2, page.Total)
	for _, d := range drinks {
		assert.Equal(t, "Red Bull", d.Brand)
	}
}

func TestDrinkListUnknownFilterRejected(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seedDrinks(t, repo)

	_, _, err := repo.List(query.Params{
		Filters: []query.Filter{{Field: "stock", Op: query.OpEq, Value: 5}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
}

func TestDrinkListSort(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seedDrinks(t, repo)

	asc, _, err := repo.List(query.Params{SortBy: "price", SortOrder: "asc"})
	require.NoError(t, err)
	desc, _, err := repo.List(query.Params{SortBy: "price", SortOrder: "desc"})
	require.NoError(t, err)

	require.Len(t, asc, 4)
	require.Len(t, desc, 4)
	assert.Equal(t, asc[0].Price, desc[len(desc)-1].Price)
	assert.Equal(t, asc[len(asc)-1].Price, desc[0].Price)

	// An undeclared sort field is ignored, not an error.
	_, _, err = repo.List(query.Params{SortBy: "nonsense"})
	assert.NoError(t, err)
}

func TestDrinkListSearch(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seedDrinks(t, repo)

	drinks, _, err := repo.List(query.Params{Search: "sugar"})
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Sugarfree", drinks[0].Name)

	// Search matches across both columns.
	drinks, _, err = repo.List(query.Params{Search: "mon"})
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Monster", drinks[0].Brand)
}

func TestDrinkFindMissing(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()

	_, err := repo.Find(999)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDrinkUpdateFields(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seed := seedDrinks(t, repo)

	updated, err := repo.UpdateFields(seed[0].ID, map[string]interface{}{
		models.DrinkColPrice: 229,
	})
	require.NoError(t, err)
	assert.Equal(t, 229, updated.Price)

	// Untouched fields keep their values.
	assert.Equal(t, seed[0].Brand, updated.Brand)
	assert.Equal(t, seed[0].Name, updated.Name)
	assert.Equal(t, seed[0].Stock, updated.Stock)
}

func TestDrinkUpdateEmptyMapIsNoOp(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seed := seedDrinks(t, repo)

	got, err := repo.UpdateFields(seed[0].ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, seed[0].ID, got.ID)
	assert.Equal(t, seed[0].Price, got.Price)
}

func TestDrinkDelete(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seed := seedDrinks(t, repo)

	require.NoError(t, repo.Delete(seed[0].ID))

	_, err := repo.Find(seed[0].ID)
	assert.True(t, apperr.IsNotFound(err))

	err = repo.Delete(seed[0].ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDrinkBrands(t *testing.T) {
	setupDB(t)
	repo := NewDrinkRepository()
	seedDrinks(t, repo)

	brands, err := repo.Brands()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Red Bull", "Monster", "Celsius"}, brands)
}

func TestCarRepository(t *testing.T) {
	setupDB(t)
	repo := NewCarRepository()

	car := models.Car{Make: "Toyota", Model: "Corolla", Year: 2021, Color: "white"}
	require.NoError(t, repo.Create(&car))
	require.NotZero(t, car.ID)

	got, err := repo.Find(car.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Views)

	for i := 1; i <= 3; i++ {
		got, err = repo.IncrementViews(car.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.Views)
	}

	// The increment is persisted, not just returned.
	got, err = repo.Find(car.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Views)
}

func TestSneakerPriceRangeFilter(t *testing.T) {
	setupDB(t)
	repo := NewSneakerRepository()

	for _, s := range []models.Sneaker{
		{Brand: "Nike", Model: "Air Max", Price: 130},
		{Brand: "Adidas", Model: "Samba", Price: 100},
		{Brand: "New Balance", Model: "990v6", Price: 200},
	} {
		sn := s
		require.NoError(t, repo.Create(&sn))
	}

	sneakers, _, err := repo.List(query.Params{
		Filters: []query.Filter{
			{Field: "price", Op: query.OpGte, Value: 100},
			{Field: "price", Op: query.OpLte, Value: 150},
		},
	})
	require.NoError(t, err)
	require.Len(t, sneakers, 1)
	assert.Equal(t, "Nike", sneakers[0].Brand)
}
