package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header echoing the request id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber locals key holding the request id.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning a RayID to every request.
// An incoming X-Ray-ID header is reused so ids can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
