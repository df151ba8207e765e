// Package controllers maps HTTP requests onto the service layer. Handlers
// stay thin: parse, validate, delegate, render.
package controllers

import (
	"github.com/shashiranjanraj/vitrine/app/requests"
	"github.com/shashiranjanraj/vitrine/app/services"
	"github.com/shashiranjanraj/vitrine/pkg/ctx"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

// DrinkController serves the /api/energy-drinks endpoints.
type DrinkController struct {
	service *services.DrinkService
}

func NewDrinkController() *DrinkController {
	return &DrinkController{service: services.NewDrinkService()}
}

func (ct *DrinkController) Index(c *ctx.Context) {
	p := query.ParseValues(c.R.URL.Query())

	if brand := c.Query("filter_brand"); brand != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "brand", Op: query.OpEq, Value: brand})
	}
	if volume, present, ok := c.QueryInt("filter_volume"); present {
		if !ok {
			c.Error(400, "filter_volume must be an integer")
			return
		}
		p.Filters = append(p.Filters, query.Filter{Field: "volume_ml", Op: query.OpEq, Value: volume})
	}

	drinks, page, err := ct.service.List(p)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated(drinks, page)
}

func (ct *DrinkController) Show(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	drink, err := ct.service.Get(id)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(drink)
}

func (ct *DrinkController) Store(c *ctx.Context) {
	var in requests.CreateDrink
	if !c.BindJSON(&in) {
		return
	}
	drink := in.Entity()
	if err := ct.service.Create(&drink); err != nil {
		c.Fail(err)
		return
	}
	c.Created(drink)
}

func (ct *DrinkController) Update(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	var in requests.UpdateDrink
	if !c.BindJSON(&in) {
		return
	}
	drink, err := ct.service.Update(id, in.Fields())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(drink)
}

func (ct *DrinkController) Destroy(c *ctx.Context) {
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

// Buy handles POST /energy-drinks/{id}/buy?quantity=N. Quantity defaults
// to one unit.
func (ct *DrinkController) Buy(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	quantity, present, ok := c.QueryInt("quantity")
	if !present {
		quantity = 1
	} else if !ok {
		c.Error(400, "quantity must be an integer")
		return
	}

	drink, err := ct.service.Buy(id, quantity)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(drink)
}

func (ct *DrinkController) Brands(c *ctx.Context) {
	brands, err := ct.service.Brands()
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(brands)
}
