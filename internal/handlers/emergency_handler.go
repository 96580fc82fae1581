package handlers

import (
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EmergencyHandler struct {
	contacts *services.ContactService
	alerts   *services.AlertService
}

func NewEmergencyHandler(contacts *services.ContactService, alerts *services.AlertService) *EmergencyHandler {
	return &EmergencyHandler{contacts: contacts, alerts: alerts}
}

func (h *EmergencyHandler) ListContacts(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	contacts, err := h.contacts.List(c.UserContext(), user.UserID)
	if err != nil {
		return serviceError(c, err, "contacts.list")
	}
	return c.JSON(contacts)
}

func (h *EmergencyHandler) CreateContact(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	contact, err := h.contacts.Create(c.UserContext(), user.UserID, &req)
	if err != nil {
		return serviceError(c, err, "contacts.create")
	}
	return c.JSON(contact)
}

func (h *EmergencyHandler) DeleteContact(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.contacts.Delete(c.UserContext(), user.UserID, c.Params("id")); err != nil {
		return serviceError(c, err, "contacts.delete")
	}
	return c.JSON(dto.MessageResponse{Message: "Contact deleted"})
}

func (h *EmergencyHandler) Trigger(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	var req dto.TriggerEmergencyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	alert, err := h.alerts.Trigger(c.UserContext(), user.UserID, &req)
	if err != nil {
		return serviceError(c, err, "emergency.trigger")
	}
	return c.JSON(alert)
}

// Active answers JSON null when the user has no active alert.
func (h *EmergencyHandler) Active(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	alert, err := h.alerts.Active(c.UserContext(), user.UserID)
	if err != nil {
		return serviceError(c, err, "emergency.active")
	}
	if alert == nil {
		return c.JSON(nil)
	}
	return c.JSON(alert)
}

func (h *EmergencyHandler) Resolve(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.alerts.Resolve(c.UserContext(), user.UserID, c.Params("id")); err != nil {
		return serviceError(c, err, "emergency.resolve")
	}
	return c.JSON(dto.MessageResponse{Message: "Emergency resolved"})
}
