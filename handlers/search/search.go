package search

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/services/search"
	"github.com/yok-atlas/uni-api/utils/response"
	"github.com/yok-atlas/uni-api/utils/validation"
)

// SearchHandler serves the name searches, the score-range lookup and the
// advanced multi-criteria search.
type SearchHandler struct {
	service   *search.Service
	validator *validation.Validator
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service *search.Service) *SearchHandler {
	return &SearchHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// NameQuery is a validated free-text search term.
type NameQuery struct {
	Name string `query:"name" validate:"required,min=2,max=100"`
}

// parseNameQuery validates the name term, writing the 400 itself on failure.
// The bool reports whether the term is usable; the response helpers return
// nil once the body is written, so callers must stop on false, not on the
// error value.
func (h *SearchHandler) parseNameQuery(c *fiber.Ctx) (string, bool, error) {
	var q NameQuery
	if err := c.QueryParser(&q); err != nil {
		return "", false, response.BadRequest(c, "Invalid search parameter", "the search term could not be parsed", "name")
	}
	if err := h.validator.ValidateStruct(q); err != nil {
		message, field := "the search term is invalid", "name"
		if fieldErr := validation.FirstError(err); fieldErr != nil {
			message, field = fieldErr.Message, fieldErr.Field
		}
		return "", false, response.BadRequest(c, "Invalid search parameter", message, field)
	}
	return q.Name, true, nil
}

// SearchFaculty handles GET /api/search/faculty?name=
func (h *SearchHandler) SearchFaculty(c *fiber.Ctx) error {
	name, ok, err := h.parseNameQuery(c)
	if !ok {
		return err
	}

	results := h.service.SearchFaculties(name)
	if len(results) == 0 {
		return response.NotFound(c, "No matching faculties found", fiber.Map{
			"searchTerm": name,
		})
	}

	return c.JSON(fiber.Map{
		"count":      len(results),
		"searchTerm": name,
		"results":    results,
	})
}

// SearchProgram handles GET /api/search/program?name=
func (h *SearchHandler) SearchProgram(c *fiber.Ctx) error {
	name, ok, err := h.parseNameQuery(c)
	if !ok {
		return err
	}

	results := h.service.SearchPrograms(name)
	if len(results) == 0 {
		return response.NotFound(c, "No matching programs found", fiber.Map{
			"searchTerm": name,
		})
	}

	return c.JSON(fiber.Map{
		"count":      len(results),
		"searchTerm": name,
		"results":    results,
	})
}

// ScoreRange handles GET /api/programs/score-range?minScore=&maxScore=&scoreType=
func (h *SearchHandler) ScoreRange(c *fiber.Ctx) error {
	rawMin := c.Query("minScore")
	rawMax := c.Query("maxScore")
	scoreType := strings.TrimSpace(c.Query("scoreType"))

	if rawMin == "" || rawMax == "" {
		return response.BadRequest(c, "Missing parameters", "minScore and maxScore are required", "")
	}

	min, errMin := strconv.ParseFloat(rawMin, 64)
	max, errMax := strconv.ParseFloat(rawMax, 64)
	if errMin != nil || errMax != nil || min < 0 || max < 0 || min > max {
		return response.BadRequest(c, "Invalid score range", "a valid score range must be provided", "")
	}

	results := h.service.ByScoreRange(min, max, scoreType)

	echoType := scoreType
	if echoType == "" {
		echoType = "all"
	}

	if results == nil {
		results = []search.UniversityMatch{}
	}
	return c.JSON(fiber.Map{
		"count":      len(results),
		"scoreRange": fiber.Map{"min": min, "max": max},
		"scoreType":  echoType,
		"results":    results,
	})
}

// AdvancedSearch handles GET /api/search/advanced. Zero matches is a normal
// outcome here: 200 with count 0, never a 404.
func (h *SearchHandler) AdvancedSearch(c *fiber.Ctx) error {
	var q search.Query
	if err := c.QueryParser(&q); err != nil {
		return response.BadRequest(c, "Invalid query", "the query parameters could not be parsed", "")
	}

	criteria, err := search.ParseQuery(q)
	if err != nil {
		var paramErr *search.InvalidParamError
		if errors.As(err, &paramErr) {
			return response.BadRequest(c, "Invalid parameter", paramErr.Message, paramErr.Parameter)
		}
		return response.BadRequest(c, "Invalid query", err.Error(), "")
	}

	return c.JSON(h.service.Advanced(criteria))
}

// FilterOptions handles GET /api/search/filters
func (h *SearchHandler) FilterOptions(c *fiber.Ctx) error {
	return c.JSON(h.service.Options())
}
