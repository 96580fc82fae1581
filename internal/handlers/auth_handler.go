package handlers

import (
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Session exchanges the provider's X-Session-ID for a session token.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Get("X-Session-ID"))
	if sessionID == "" {
		return badRequest(c, "X-Session-ID header is required")
	}

	user, token, err := h.authService.ExchangeSession(c.UserContext(), sessionID)
	if err != nil {
		return serviceError(c, err, "auth.session")
	}

	ttl := h.cfg.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(dto.SessionResponse{User: *user, SessionToken: token})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.authService.Logout(c.UserContext(), user.UserID); err != nil {
		return serviceError(c, err, "auth.logout")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
