package dto

import "github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"

// CreateContactRequest uses pointers for the required fields so that an
// omitted field is told apart from an empty one.
type CreateContactRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email,omitempty"`
	IsPrimary    bool    `json:"is_primary"`
}

type TriggerEmergencyRequest struct {
	Type     string           `json:"type"`
	Location *models.Location `json:"location"`
	Evidence []string         `json:"evidence,omitempty"`
}
