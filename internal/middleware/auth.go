package middleware

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie = "session_token"
	userLocalsKey = "user"
)

// SessionRequired resolves the session token from the Authorization header or
// the session cookie and stores the user in request locals.
func SessionRequired(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization), c.Cookies(SessionCookie))
		if err != nil {
			status, message := authFailure(err)
			if status >= fiber.StatusInternalServerError {
				slog.Error("session lookup failed", "error", err, "request_id", c.Locals("requestid"))
			}
			return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by SessionRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrSessionExpired):
		return fiber.StatusUnauthorized, "Session expired"
	case errors.Is(err, services.ErrInvalidSession):
		return fiber.StatusUnauthorized, "Invalid session"
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}
