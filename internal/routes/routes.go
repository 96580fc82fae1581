package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers bundles everything Setup mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Emergency *handlers.EmergencyHandler
	Community *handlers.CommunityHandler
	Safety    *handlers.SafetyHandler
	FakeCall  *handlers.FakeCallHandler
	AI        *handlers.AIHandler
	Admin     *handlers.AdminHandler
}

func Setup(app *fiber.App, cfg *config.Config, authService *services.AuthService, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/", h.Health.Root)
	api.Get("/health", h.Health.Check)

	session := middleware.SessionRequired(authService)

	// Session exchange hits the identity provider: 10 req/min per IP
	api.Get("/auth/session", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), h.Auth.Session)
	api.Get("/auth/me", session, h.Auth.Me)
	api.Post("/auth/logout", session, h.Auth.Logout)

	emergency := api.Group("/emergency", session)
	emergency.Get("/contacts", h.Emergency.ListContacts)
	emergency.Post("/contacts", h.Emergency.CreateContact)
	emergency.Delete("/contacts/:id", h.Emergency.DeleteContact)
	emergency.Post("/trigger", h.Emergency.Trigger)
	emergency.Get("/active", h.Emergency.Active)
	emergency.Post("/resolve/:id", h.Emergency.Resolve)

	// Report listing is public; submitting needs a session
	api.Get("/community/reports", h.Community.ListReports)
	api.Post("/community/reports", session, h.Community.SubmitReport)

	api.Get("/safety/zones", h.Safety.ListZones)
	api.Post("/safety/zones/nearby", h.Safety.NearbyZones)

	api.Post("/fake-call", session, h.FakeCall.Generate)
	api.Post("/ai/analyze-distress", session, h.AI.AnalyzeDistress)

	admin := api.Group("/admin", middleware.AdminToken(cfg))
	admin.Post("/seed-zones", h.Admin.SeedZones)
}
