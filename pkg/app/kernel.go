package app

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/vitrine/config"
	"github.com/shashiranjanraj/vitrine/pkg/database"
	"github.com/shashiranjanraj/vitrine/pkg/metrics"
	"github.com/shashiranjanraj/vitrine/pkg/middleware"
	"github.com/shashiranjanraj/vitrine/pkg/reqid"
	"github.com/shashiranjanraj/vitrine/pkg/router"
)

// buildHandler assembles the global middleware stack, auto-migrates the
// registered models and mounts the application's routes.
func (a *Application) buildHandler() http.Handler {
	if database.DB != nil && len(a.models) > 0 {
		database.DB.AutoMigrate(a.models...)
	}

	r := router.New()

	// Outermost to innermost:
	//  1. metrics    — records total latency before anything else runs
	//  2. recovery   — panics become 500s, not dead goroutines
	//  3. request id — assigned before any logging happens
	//  4. logger     — one line per request, tagged with the id
	//  5. CORS
	//  6. rate limit — per client IP
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimitPerMinute(), time.Minute))

	r.HandleFunc("/metrics", metrics.Handler())

	for _, fn := range a.routesFns {
		fn(r)
	}

	return r.Handler()
}
