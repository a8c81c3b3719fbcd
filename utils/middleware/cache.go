package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/utils/cache"
)

// Cached serves GET responses from the store when a fresh entry exists for
// the request fingerprint, short-circuiting the handler. Misses fall through
// and successful (200) responses are stored with the given TTL. Every
// response carries an X-Cache header.
func Cached(store *cache.Memory, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cache.Fingerprint(c.Path(), string(c.Request().URI().QueryString()))

		if entry, err := store.Get(key); err == nil {
			c.Set("X-Cache", "HIT")
			c.Set(fiber.HeaderContentType, entry.ContentType)
			return c.Status(entry.StatusCode).Send(entry.Body)
		}

		c.Set("X-Cache", "MISS")

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			// Fasthttp reuses response buffers between requests; copy
			// before storing.
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())

			store.Set(key, cache.Entry{
				Body:        body,
				StatusCode:  c.Response().StatusCode(),
				ContentType: string(c.Response().Header.ContentType()),
			}, ttl)
		}

		return nil
	}
}
