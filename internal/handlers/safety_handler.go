package handlers

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SafetyHandler struct {
	zones *services.ZoneService
}

func NewSafetyHandler(zones *services.ZoneService) *SafetyHandler {
	return &SafetyHandler{zones: zones}
}

func (h *SafetyHandler) ListZones(c *fiber.Ctx) error {
	zones, err := h.zones.ListVerified(c.UserContext())
	if err != nil {
		return serviceError(c, err, "zones.list")
	}
	return c.JSON(zones)
}

// NearbyZones reads latitude, longitude and radius from the JSON body, falling
// back to query parameters for any field the body omits.
func (h *SafetyHandler) NearbyZones(c *fiber.Ctx) error {
	var req dto.NearbyZonesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	var err error
	if req.Latitude == nil {
		if req.Latitude, err = queryFloat(c, "latitude"); err != nil {
			return badRequest(c, "latitude must be a number")
		}
	}
	if req.Longitude == nil {
		if req.Longitude, err = queryFloat(c, "longitude"); err != nil {
			return badRequest(c, "longitude must be a number")
		}
	}
	if req.Radius == nil {
		if req.Radius, err = queryFloat(c, "radius"); err != nil {
			return badRequest(c, "radius must be a number")
		}
	}

	if req.Latitude == nil || req.Longitude == nil {
		return badRequest(c, "latitude and longitude are required")
	}
	radius := services.DefaultNearbyRadius
	if req.Radius != nil {
		radius = *req.Radius
	}

	nearby, err := h.zones.Nearby(c.UserContext(), *req.Latitude, *req.Longitude, radius)
	if err != nil {
		return serviceError(c, err, "zones.nearby")
	}
	return c.JSON(nearby)
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
