package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/utils/response"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	app := fiber.New(fiber.Config{
		ErrorHandler: handleError,
	})

	return &APIServer{
		app:           app,
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}

// handleError is the app-wide error handler. Fiber-level errors keep their
// status code; anything unexpected is logged and mapped to a generic 500
// with no partial results.
func handleError(c *fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok && fiberErr.Code < fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error":   fiberErr.Message,
			"message": fiberErr.Message,
		})
	}

	log.Printf("Unhandled error: %v", err)
	return response.InternalServerError(c)
}
