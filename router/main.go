package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/config"
	"github.com/yok-atlas/uni-api/dataset"
	"github.com/yok-atlas/uni-api/handlers"
	search_handlers "github.com/yok-atlas/uni-api/handlers/search"
	stats_handlers "github.com/yok-atlas/uni-api/handlers/stats"
	university_handlers "github.com/yok-atlas/uni-api/handlers/university"
	"github.com/yok-atlas/uni-api/services/search"
	"github.com/yok-atlas/uni-api/utils/cache"
	"github.com/yok-atlas/uni-api/utils/middleware"
)

// Per-route cache TTLs: longer for rarely-changing aggregates, shorter for
// parameterized search.
const (
	ttlUniversityList = 10 * time.Minute
	ttlUniversityByID = 15 * time.Minute
	ttlCityTypeFilter = 5 * time.Minute
	ttlNameSearch     = 3 * time.Minute
	ttlAdvancedSearch = 5 * time.Minute
	ttlAggregates     = 10 * time.Minute
)

// SetupRoutes wires middleware, cache and handlers onto the app. The cache
// and rate-limiter instances are created here and injected explicitly, never
// held as package globals, so tests can build isolated apps.
func SetupRoutes(app *fiber.App, store dataset.Store, cfg *config.Config) {
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	})

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Max:    cfg.RateLimitRequests,
		Window: cfg.RateLimitWindow,
	})
	app.Use(limiter.Handle())

	responseCache := cache.New()

	searchService := search.NewService(store)
	universityHandler := university_handlers.NewUniversityHandler(store)
	searchHandler := search_handlers.NewSearchHandler(searchService)
	statsHandler := stats_handlers.NewStatsHandler(searchService)
	healthHandler := handlers.NewHealthHandler(store, responseCache)

	app.Get("/", handlers.HandleIndex)
	app.Get("/health", healthHandler.HandleCheckHealth)

	api := app.Group("/api")

	universities := api.Group("/universities")
	universities.Get("/", middleware.Cached(responseCache, ttlUniversityList), universityHandler.ListUniversities)
	universities.Get("/city/:city", middleware.Cached(responseCache, ttlCityTypeFilter), universityHandler.GetByCity)
	universities.Get("/type/:type", middleware.Cached(responseCache, ttlCityTypeFilter), universityHandler.GetByType)
	universities.Get("/:id", middleware.Cached(responseCache, ttlUniversityByID), universityHandler.GetUniversity)

	searchGroup := api.Group("/search")
	searchGroup.Get("/faculty", middleware.Cached(responseCache, ttlNameSearch), searchHandler.SearchFaculty)
	searchGroup.Get("/program", middleware.Cached(responseCache, ttlNameSearch), searchHandler.SearchProgram)
	searchGroup.Get("/advanced", middleware.Cached(responseCache, ttlAdvancedSearch), searchHandler.AdvancedSearch)
	searchGroup.Get("/filters", middleware.Cached(responseCache, ttlAggregates), searchHandler.FilterOptions)

	api.Get("/programs/score-range", middleware.Cached(responseCache, ttlCityTypeFilter), searchHandler.ScoreRange)
	api.Get("/statistics", middleware.Cached(responseCache, ttlAggregates), statsHandler.GetStatistics)

	app.Use(handlers.HandleNotFound)
}
