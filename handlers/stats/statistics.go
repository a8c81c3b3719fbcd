package stats

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/services/search"
)

// StatsHandler serves the dataset statistics endpoint.
type StatsHandler struct {
	service *search.Service
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(service *search.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStatistics handles GET /api/statistics
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}
