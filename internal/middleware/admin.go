package middleware

import (
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminToken guards admin routes with the X-Admin-Token header. When
// ADMIN_TOKEN is unset the routes are open.
func AdminToken(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken == "" {
			return c.Next()
		}
		if subtle.ConstantTimeCompare([]byte(c.Get("X-Admin-Token")), []byte(cfg.AdminToken)) == 1 {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
