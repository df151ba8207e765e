package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/vitrine/app/models"
	"github.com/shashiranjanraj/vitrine/app/routes"
	"github.com/shashiranjanraj/vitrine/pkg/database"
	"github.com/shashiranjanraj/vitrine/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func setupAPI(t *testing.T) http.Handler {
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

	r := router.New()
	routes.RegisterAPI(r)
	return r.Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func createDrink(t *testing.T, h http.Handler, body map[string]any) models.EnergyDrink {
	t.Helper()
	rec, env := do(t, h, "POST", "/api/energy-drinks/", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var drink models.EnergyDrink
	require.NoError(t, json.Unmarshal(env.Data, &drink))
	require.NotZero(t, drink.ID)
	return drink
}

func TestDrinkCRUD(t *testing.T) {
	h := setupAPI(t)

	drink := createDrink(t, h, map[string]any{
		"brand": "Red Bull", "name": "Original", "volume_ml": 250, "price": 199, "stock": 5,
	})

	rec, env := do(t, h, "GET", fmt.Sprintf("/api/energy-drinks/%d", drink.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var got models.EnergyDrink
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Red Bull", got.Brand)

	// Partial update touches only the supplied field.
	rec, env = do(t, h, "PUT", fmt.Sprintf("/api/energy-drinks/%d", drink.ID), map[string]any{"price": 229})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 229, got.Price)
	assert.Equal(t, "Red Bull", got.Brand)
	assert.Equal(t, 5, got.Stock)

	rec, _ = do(t, h, "DELETE", fmt.Sprintf("/api/energy-drinks/%d", drink.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())

	rec, _ = do(t, h, "GET", fmt.Sprintf("/api/energy-drinks/%d", drink.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, "DELETE", fmt.Sprintf("/api/energy-drinks/%d", drink.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDrinkValidation(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/energy-drinks/", map[string]any{"brand": "X"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "volume_ml")
}

func TestDrinkListEndpoint(t *testing.T) {
	h := setupAPI(t)

	for i := 0; i < 15; i++ {
		createDrink(t, h, map[string]any{
			"brand": "Monster", "name": fmt.Sprintf("Flavor %02d", i), "volume_ml": 500, "price": 200 + i, "stock": 1,
		})
	}

	// Default window is 10 items.
	rec, env := do(t, h, "GET", "/api/energy-drinks/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Items      []models.EnergyDrink `json:"items"`
		Pagination struct {
			Skip  int   `json:"skip"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 10)
	assert.EqualValues(t, 15, data.Pagination.Total)

	// Explicit window.
	rec, env = do(t, h, "GET", "/api/energy-drinks/?skip=10&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 5)

	// Sorting desc by price puts the dearest first.
	rec, env = do(t, h, "GET", "/api/energy-drinks/?sort_by=price&sort_order=desc&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, 214, data.Items[0].Price)

	// Unknown sort field is ignored.
	rec, _ = do(t, h, "GET", "/api/energy-drinks/?sort_by=shoe_size", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Malformed numeric filter is a 400.
	rec, _ = do(t, h, "GET", "/api/energy-drinks/?filter_volume=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Declared filter narrows the set.
	rec, env = do(t, h, "GET", "/api/energy-drinks/?filter_volume=500&limit=100", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 15)
}

func TestDrinkBuyEndpoint(t *testing.T) {
	h := setupAPI(t)

	drink := createDrink(t, h, map[string]any{
		"brand": "X", "name": "Y", "volume_ml": 250, "price": 100, "stock": 5,
	})

	rec, env := do(t, h, "POST", fmt.Sprintf("/api/energy-drinks/%d/buy?quantity=3", drink.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.EnergyDrink
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 2, got.Stock)

	rec, _ = do(t, h, "POST", fmt.Sprintf("/api/energy-drinks/%d/buy?quantity=10", drink.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Default quantity is one.
	rec, env = do(t, h, "POST", fmt.Sprintf("/api/energy-drinks/%d/buy", drink.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 1, got.Stock)

	rec, _ = do(t, h, "POST", fmt.Sprintf("/api/energy-drinks/%d/buy?quantity=0", drink.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDrinkBrandsEndpoint(t *testing.T) {
	h := setupAPI(t)

	createDrink(t, h, map[string]any{"brand": "Red Bull", "name": "Original", "volume_ml": 250, "price": 199})
	createDrink(t, h, map[string]any{"brand": "Monster", "name": "Energy", "volume_ml": 500, "price": 249})

	rec, env := do(t, h, "GET", "/api/energy-drinks/brands", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var brands []string
	require.NoError(t, json.Unmarshal(env.Data, &brands))
	assert.ElementsMatch(t, []string{"Red Bull", "Monster"}, brands)
}

func TestCarViewsEndpoint(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/cars/", map[string]any{
		"make": "Toyota", "model": "Corolla", "year": 2021, "color": "white",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var car models.Car
	require.NoError(t, json.Unmarshal(env.Data, &car))
	assert.Equal(t, 0, car.Views)

	for i := 1; i <= 3; i++ {
		rec, env = do(t, h, "GET", fmt.Sprintf("/api/cars/%d", car.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(env.Data, &car))
		assert.Equal(t, i, car.Views)
	}
}

func TestCarYearValidation(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/cars/", map[string]any{
		"make": "DeLorean", "model": "DMC-12", "year": 1700, "color": "silver",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "year")
}

func TestCarUpdateRejectsSuppliedZeroValues(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/cars/", map[string]any{
		"make": "Toyota", "model": "Corolla", "year": 2021, "color": "white",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var car models.Car
	require.NoError(t, json.Unmarshal(env.Data, &car))

	// Zero values sent explicitly must fail the field rules, not slip
	// through as if the fields were omitted.
	rec, env = do(t, h, "PUT", fmt.Sprintf("/api/cars/%d", car.ID), map[string]any{
		"make": "", "year": 0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "make")
	assert.Contains(t, env.Errors, "year")

	// The row is untouched.
	rec, env = do(t, h, "GET", fmt.Sprintf("/api/cars/%d", car.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &car))
	assert.Equal(t, "Toyota", car.Make)
	assert.Equal(t, 2021, car.Year)
}

func TestSneakerRateEndpoint(t *testing.T) {
	h := setupAPI(t)

	rec, env := do(t, h, "POST", "/api/sneakers/", map[string]any{
		"brand": "Nike", "model": "Air Max", "price": 130,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var sneaker models.Sneaker
	require.NoError(t, json.Unmarshal(env.Data, &sneaker))
	assert.Equal(t, 0.0, sneaker.Rating)

	rec, _ = do(t, h, "POST", fmt.Sprintf("/api/sneakers/%d/rate?rating=7", sneaker.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, h, "POST", fmt.Sprintf("/api/sneakers/%d/rate?rating=4.5", sneaker.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &sneaker))
	assert.Equal(t, 4.5, sneaker.Rating)

	// Missing rating parameter.
	rec, _ = do(t, h, "POST", fmt.Sprintf("/api/sneakers/%d/rate", sneaker.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSneakerPriceFilterEndpoint(t *testing.T) {
	h := setupAPI(t)

	for _, s := range []map[string]any{
		{"brand": "Nike", "model": "Air Max", "price": 130},
		{"brand": "Adidas", "model": "Samba", "price": 100},
		{"brand": "New Balance", "model": "990v6", "price": 200},
	} {
		rec, _ := do(t, h, "POST", "/api/sneakers/", s)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := do(t, h, "GET", "/api/sneakers/?filter_price_min=110&filter_price_max=150", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Items []models.Sneaker `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Nike", data.Items[0].Brand)
}

func TestBadIDIsBadRequest(t *testing.T) {
	h := setupAPI(t)

	rec, _ := do(t, h, "GET", "/api/energy-drinks/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestZeroIDIsNotFound(t *testing.T) {
	h := setupAPI(t)

	// 0 is a well-formed id that matches no row, so the store reports it.
	rec, _ := do(t, h, "GET", "/api/energy-drinks/0", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	h := setupAPI(t)

	req := httptest.NewRequest("POST", "/api/energy-drinks/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := setupAPI(t)

	rec, _ := do(t, h, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var status map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "up", status["database"])
}
