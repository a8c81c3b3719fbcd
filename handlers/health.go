package handlers

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/dataset"
	"github.com/yok-atlas/uni-api/utils/cache"
)

// HealthHandler serves the liveness endpoint with process and cache stats.
type HealthHandler struct {
	store     dataset.Store
	cache     *cache.Memory
	startedAt time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store dataset.Store, responseCache *cache.Memory) *HealthHandler {
	return &HealthHandler{
		store:     store,
		cache:     responseCache,
		startedAt: time.Now(),
	}
}

// HandleCheckHealth handles GET /health
func (h *HealthHandler) HandleCheckHealth(c *fiber.Ctx) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
		"cache": fiber.Map{
			"size": h.cache.Size(),
		},
		"memory": fiber.Map{
			"used":  mem.HeapAlloc / 1024 / 1024,
			"total": mem.HeapSys / 1024 / 1024,
		},
		"universities": h.store.Count(),
	})
}
