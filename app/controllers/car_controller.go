package controllers

import (
	"github.com/shashiranjanraj/vitrine/app/requests"
	"github.com/shashiranjanraj/vitrine/app/services"
	"github.com/shashiranjanraj/vitrine/pkg/ctx"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

// CarController serves the /api/cars endpoints.
type CarController struct {
	service *services.CarService
}

func NewCarController() *CarController {
	return &CarController{service: services.NewCarService()}
}

func (ct *CarController) Index(c *ctx.Context) {
	p := query.ParseValues(c.R.URL.Query())

	if maker := c.Query("filter_make"); maker != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "make", Op: query.OpEq, Value: maker})
	}
	if year, present, ok := c.QueryInt("filter_year"); present {
		if !ok {
			c.Error(400, "filter_year must be an integer")
			return
		}
		p.Filters = append(p.Filters, query.Filter{Field: "year", Op: query.OpEq, Value: year})
	}

	cars, page, err := ct.service.List(p)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated(cars, page)
}

// Show is a side-effecting read: the car's view counter is incremented
// before the row is returned.
func (ct *CarController) Show(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	car, err := ct.service.Get(id)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(car)
}

func (ct *CarController) Store(c *ctx.Context) {
	var in requests.CreateCar
	if !c.BindJSON(&in) {
		return
	}
	car := in.Entity()
	if err := ct.service.Create(&car); err != nil {
		c.Fail(err)
		return
	}
	c.Created(car)
}

func (ct *CarController) Update(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	var in requests.UpdateCar
	if !c.BindJSON(&in) {
		return
	}
	car, err := ct.service.Update(id, in.Fields())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(car)
}

func (ct *CarController) Destroy(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	if err := ct.service.Delete(id); err != nil {
		c.Fail(err)
		return
	}
	c.NoContent()
}
