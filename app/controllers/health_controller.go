package controllers

import (
	"github.com/shashiranjanraj/vitrine/pkg/cache"
	"github.com/shashiranjanraj/vitrine/pkg/ctx"
	"github.com/shashiranjanraj/vitrine/pkg/database"
)

// HealthController reports process liveness and dependency status.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ct *HealthController) Check(c *ctx.Context) {
	status := map[string]string{
		"app":      "up",
		"database": "up",
		"redis":    "up",
	}

	code := 200
	if err := database.Ping(); err != nil {
		status["database"] = "down"
		code = 503
	}
	if err := cache.Ping(); err != nil {
		status["redis"] = "down"
	}

	c.JSON(code, status)
}
