package university

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/dataset"
	"github.com/yok-atlas/uni-api/model"
	"github.com/yok-atlas/uni-api/utils/response"
)

// UniversityHandler serves the singular university lookups. These 404 on an
// empty result, unlike the advanced search which returns 200 with count 0.
type UniversityHandler struct {
	store dataset.Store
}

// NewUniversityHandler creates a new university handler.
func NewUniversityHandler(store dataset.Store) *UniversityHandler {
	return &UniversityHandler{store: store}
}

// ListUniversities handles GET /api/universities
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	return c.JSON(h.store.All())
}

// GetUniversity handles GET /api/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid id parameter", "id must be a positive number", "id")
	}

	university, ok := h.store.ByID(id)
	if !ok {
		return response.NotFound(c, "University not found", fiber.Map{
			"searchedId": id,
		})
	}

	return c.JSON(university)
}

// GetByCity handles GET /api/universities/city/:city
func (h *UniversityHandler) GetByCity(c *fiber.Ctx) error {
	rawCity := c.Params("city")
	if rawCity == "" {
		return response.BadRequest(c, "Missing city parameter", "a city name must be provided", "city")
	}
	city := strings.ToUpper(rawCity)

	var universities []model.University
	for _, university := range h.store.All() {
		if strings.Contains(strings.ToUpper(university.City), city) {
			universities = append(universities, university)
		}
	}

	if len(universities) == 0 {
		return response.NotFound(c, "No universities found in this city", fiber.Map{
			"searchedCity": rawCity,
		})
	}

	return c.JSON(fiber.Map{
		"count":        len(universities),
		"city":         rawCity,
		"universities": universities,
	})
}

// GetByType handles GET /api/universities/type/:type
func (h *UniversityHandler) GetByType(c *fiber.Ctx) error {
	rawType := c.Params("type")
	if rawType == "" {
		return response.BadRequest(c, "Missing type parameter", "a university type must be provided", "type")
	}
	universityType := strings.ToUpper(rawType)

	if !strings.Contains(universityType, "DEVLET") && !strings.Contains(universityType, "VAKIF") {
		return response.BadRequestWith(c, "Invalid university type", "valid types: Devlet, Vakıf", fiber.Map{
			"providedType": rawType,
		})
	}

	var universities []model.University
	for _, university := range h.store.All() {
		if strings.Contains(strings.ToUpper(university.Type), universityType) {
			universities = append(universities, university)
		}
	}

	if len(universities) == 0 {
		return response.NotFound(c, "No universities found of this type", fiber.Map{
			"searchedType": rawType,
		})
	}

	return c.JSON(fiber.Map{
		"count":        len(universities),
		"type":         rawType,
		"universities": universities,
	})
}
