// Package routes declares the HTTP surface of the application.
package routes

import (
	"github.com/shashiranjanraj/vitrine/app/controllers"
	"github.com/shashiranjanraj/vitrine/pkg/ctx"
	"github.com/shashiranjanraj/vitrine/pkg/router"
)

// RegisterAPI mounts every endpoint on the router. Static paths are
// registered before their sibling {id} patterns.
func RegisterAPI(r *router.Router) {
	health := controllers.NewHealthController()
	r.Get("/healthz", "health.check", ctx.Wrap(health.Check))

	api := r.Group("/api")

	drinks := controllers.NewDrinkController()
	dg := api.Group("/energy-drinks")
	dg.Get("/", "drinks.index", ctx.Wrap(drinks.Index))
	dg.Get("/brands", "drinks.brands", ctx.Wrap(drinks.Brands))
	dg.Get("/{id}", "drinks.show", ctx.Wrap(drinks.Show))
	dg.Post("/", "drinks.store", ctx.Wrap(drinks.Store))
	dg.Post("/{id}/buy", "drinks.buy", ctx.Wrap(drinks.Buy))
	dg.Put("/{id}", "drinks.update", ctx.Wrap(drinks.Update))
	dg.Delete("/{id}", "drinks.destroy", ctx.Wrap(drinks.Destroy))

	cars := controllers.NewCarController()
	cg := api.Group("/cars")
	cg.Get("/", "cars.index", ctx.Wrap(cars.Index))
	cg.Get("/{id}", "cars.show", ctx.Wrap(cars.Show))
	cg.Post("/", "cars.store", ctx.Wrap(cars.Store))
	cg.Put("/{id}", "cars.update", ctx.Wrap(cars.Update))
	cg.Delete("/{id}", "cars.destroy", ctx.Wrap(cars.Destroy))

	sneakers := controllers.NewSneakerController()
	sg := api.Group("/sneakers")
	sg.Get("/", "sneakers.index", ctx.Wrap(sneakers.Index))
	sg.Get("/{id}", "sneakers.show", ctx.Wrap(sneakers.Show))
	sg.Post("/", "sneakers.store", ctx.Wrap(sneakers.Store))
	sg.Post("/{id}/rate", "sneakers.rate", ctx.Wrap(sneakers.Rate))
	sg.Put("/{id}", "sneakers.update", ctx.Wrap(sneakers.Update))
	sg.Delete("/{id}", "sneakers.destroy", ctx.Wrap(sneakers.Destroy))
}
