package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Actor stores the acting user id from the X-Actor-ID header in context
// locals. The core never assumes an implicit actor; mutating endpoints that
// record authorship require the header.
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Get("X-Actor-ID"); v != "" {
			if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
				c.Locals("actor_id", id)
			}
		}
		return c.Next()
	}
}

// ActorID extracts the acting user id placed by Actor.
func ActorID(c *fiber.Ctx) (int64, error) {
	if id, ok := c.Locals("actor_id").(int64); ok {
		return id, nil
	}
	return 0, errors.New("missing or invalid X-Actor-ID header")
}
