package handlers

import (
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommunityHandler struct {
	reports *services.ReportService
}

func NewCommunityHandler(reports *services.ReportService) *CommunityHandler {
	return &CommunityHandler{reports: reports}
}

func (h *CommunityHandler) SubmitReport(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.reports.Submit(c.UserContext(), user.UserID, &req)
	if err != nil {
		return serviceError(c, err, "reports.submit")
	}
	return c.JSON(report)
}

func (h *CommunityHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.reports.List(c.UserContext(), services.ParseLimit(c.Query("limit")))
	if err != nil {
		return serviceError(c, err, "reports.list")
	}
	return c.JSON(reports)
}
