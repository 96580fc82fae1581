package handlers

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	zones *services.ZoneService
}

func NewAdminHandler(zones *services.ZoneService) *AdminHandler {
	return &AdminHandler{zones: zones}
}

func (h *AdminHandler) SeedZones(c *fiber.Ctx) error {
	n, err := h.zones.Seed(c.UserContext())
	if err != nil {
		return serviceError(c, err, "admin.seed_zones")
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Seeded %d safety zones", n)})
}
