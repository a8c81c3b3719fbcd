package response

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// BadRequest returns a 400 with the API's validation error shape. The
// parameter field names the offending query or path parameter; pass an empty
// string when the error is not tied to a single parameter.
func BadRequest(c *fiber.Ctx, errTitle, message, parameter string) error {
	body := fiber.Map{
		"error":   errTitle,
		"message": message,
	}
	if parameter != "" {
		body["parameter"] = parameter
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// BadRequestWith returns a 400 with extra context fields merged into the body.
func BadRequestWith(c *fiber.Ctx, errTitle, message string, context fiber.Map) error {
	body := fiber.Map{
		"error":   errTitle,
		"message": message,
	}
	for key, value := range context {
		body[key] = value
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// NotFound returns a 404 with search context (searchedId, searchedCity, ...)
// so the caller can tell what missed.
func NotFound(c *fiber.Ctx, errTitle string, context fiber.Map) error {
	body := fiber.Map{"error": errTitle}
	for key, value := range context {
		body[key] = value
	}
	return c.Status(fiber.StatusNotFound).JSON(body)
}

// TooManyRequests returns a 429 with the seconds the client must wait.
func TooManyRequests(c *fiber.Ctx, retryAfter int) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error":      "Too many requests",
		"message":    "Please try again later",
		"retryAfter": retryAfter,
	})
}

// InternalServerError returns a generic 500. The cause is logged server-side,
// never echoed to the client, and no partial results are returned.
func InternalServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":     "Server error",
		"message":   "An unexpected error occurred",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
