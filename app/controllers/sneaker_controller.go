package controllers

import (
	"github.com/shashiranjanraj/vitrine/app/requests"
	"github.com/shashiranjanraj/vitrine/app/services"
	"github.com/shashiranjanraj/vitrine/pkg/ctx"
	"github.com/shashiranjanraj/vitrine/pkg/query"
)

// SneakerController serves the /api/sneakers endpoints.
type SneakerController struct {
	service *services.SneakerService
}

func NewSneakerController() *SneakerController {
	return &SneakerController{service: services.NewSneakerService()}
}

func (ct *SneakerController) Index(c *ctx.Context) {
	p := query.ParseValues(c.R.URL.Query())

	if brand := c.Query("filter_brand"); brand != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "brand", Op: query.OpEq, Value: brand})
	}
	if min, present, ok := c.QueryInt("filter_price_min"); present {
		if !ok {
			c.Error(400, "filter_price_min must be an integer")
			return
		}
		p.Filters = append(p.Filters, query.Filter{Field: "price", Op: query.OpGte, Value: min})
	}
	if max, present, ok := c.QueryInt("filter_price_max"); present {
		if !ok {
			c.Error(400, "filter_price_max must be an integer")
			return
		}
		p.Filters = append(p.Filters, query.Filter{Field: "price", Op: query.OpLte, Value: max})
	}

	sneakers, page, err := ct.service.List(p)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated(sneakers, page)
}

func (ct *SneakerController) Show(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	sneaker, err := ct.service.Get(id)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(sneaker)
}

func (ct *SneakerController) Store(c *ctx.Context) {
	var in requests.CreateSneaker
	if !c.BindJSON(&in) {
		return
	}
	sneaker := in.Entity()
	if err := ct.service.Create(&sneaker); err != nil {
		c.Fail(err)
		return
	}
	c.Created(sneaker)
}

func (ct *SneakerController) Update(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	var in requests.UpdateSneaker
	if !c.BindJSON(&in) {
		return
	}
	sneaker, err := ct.service.Update(id, in.Fields())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(sneaker)
}

func (ct *SneakerController) Destroy(c *ctx.Context) {
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

// Rate handles POST /sneakers/{id}/rate?rating=N.
func (ct *SneakerController) Rate(c *ctx.Context) {
	id, ok := c.ParamID()
	if !ok {
		return
	}
	rating, present, ok := c.QueryFloat("rating")
	if !present || !ok {
		c.Error(400, "rating must be a number between 0 and 5")
		return
	}

	sneaker, err := ct.service.Rate(id, rating)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(sneaker)
}
