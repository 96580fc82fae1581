package middleware

import (
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// wildcardOrigins stand in for "*" so credentialed requests keep working.
// Browsers refuse credentials for a wildcard origin.
var wildcardOrigins = []string{
	"http://localhost:3000",
	"https://hersafety-2.preview.emergentagent.com",
}

// CORS allows credentialed requests so the session cookie travels with them.
func CORS(cfg *config.Config) fiber.Handler {
	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" || origins == "*" {
		origins = strings.Join(wildcardOrigins, ",")
		slog.Info("CORS_ORIGINS is a wildcard, using default origins", "origins", origins)
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, X-Session-ID, X-Admin-Token",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		AllowCredentials: true,
	})
}
