package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	distress *services.DistressService
}

func NewAIHandler(distress *services.DistressService) *AIHandler {
	return &AIHandler{distress: distress}
}

// AnalyzeDistress always answers 200; classifier failures yield the fallback payload.
func (h *AIHandler) AnalyzeDistress(c *fiber.Ctx) error {
	var req dto.AnalyzeDistressRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Text == nil {
		return badRequest(c, "text is required")
	}

	user := middleware.CurrentUser(c)
	analysis := h.distress.Analyze(c.UserContext(), user.UserID, *req.Text, req.Location)

	return c.JSON(dto.DistressResponse{
		DistressAnalysis: analysis.Payload,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}
