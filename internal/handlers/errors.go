package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps service errors onto HTTP responses. Unknown errors are
// logged and reported as a 500 without detail.
func serviceError(c *fiber.Ctx, err error, action string) error {
	var validation *services.ValidationError
	var upstream *services.UpstreamAuthError

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: validation.Error()})
	case errors.Is(err, services.ErrContactNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Contact not found"})
	case errors.Is(err, services.ErrAlertNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Alert not found"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "User not found"})
	case errors.As(err, &upstream):
		slog.Warn("session exchange failed", "status", upstream.StatusCode, "error", err, "request_id", requestID(c))
		return c.Status(upstream.StatusCode).JSON(dto.ErrorResponse{Error: true, Message: "Session exchange failed"})
	}

	attrs := []any{"action", action, "error", err.Error(), "request_id", requestID(c)}
	if user := middleware.CurrentUser(c); user != nil {
		attrs = append(attrs, "user_id", user.UserID)
	}
	slog.Error("request failed", attrs...)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
