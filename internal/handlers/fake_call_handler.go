package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FakeCallHandler struct{}

func NewFakeCallHandler() *FakeCallHandler {
	return &FakeCallHandler{}
}

func (h *FakeCallHandler) Generate(c *fiber.Ctx) error {
	var req dto.FakeCallRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	user := middleware.CurrentUser(c)
	return c.JSON(services.FakeCall(req.CallerName, user.Name, time.Now()))
}
