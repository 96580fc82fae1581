package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{Message: "SafeHer API is running", Status: "healthy"})
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
