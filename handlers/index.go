package handlers

import "github.com/gofiber/fiber/v2"

// HandleIndex handles GET / with a short description of the API surface.
func HandleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Türkiye Universities API",
		"version": "2.0.0",
		"endpoints": fiber.Map{
			"/health":                      "Service health check",
			"/api/universities":            "List all universities",
			"/api/universities/:id":        "Get a university by id",
			"/api/universities/city/:city": "Filter universities by city",
			"/api/universities/type/:type": "Filter universities by type (Devlet/Vakıf)",
			"/api/search/faculty":          "Search faculties by name (query: name)",
			"/api/search/program":          "Search programs by name (query: name)",
			"/api/programs/score-range":    "Search programs by score range (query: minScore, maxScore, scoreType)",
			"/api/search/advanced":         "Advanced multi-criteria search",
			"/api/search/filters":          "Available filter options for the advanced search",
			"/api/statistics":              "Dataset statistics",
		},
		"features": []string{
			"YÖK 2024 placement data",
			"Score range filtering",
			"Quota filtering",
			"In-memory caching",
			"Rate limiting",
			"Input validation",
		},
	})
}

// HandleNotFound is the fallback for unmatched routes.
func HandleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "Endpoint not found",
		"message": c.Method() + " " + c.OriginalURL() + " does not exist",
		"availableEndpoints": []string{
			"GET /",
			"GET /health",
			"GET /api/universities",
			"GET /api/universities/:id",
			"GET /api/universities/city/:city",
			"GET /api/universities/type/:type",
			"GET /api/search/faculty?name=...",
			"GET /api/search/program?name=...",
			"GET /api/programs/score-range?minScore=...&maxScore=...&scoreType=...",
			"GET /api/search/advanced",
			"GET /api/search/filters",
			"GET /api/statistics",
		},
	})
}
