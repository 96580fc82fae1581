package dto

import "github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"

// SubmitReportRequest uses pointers so that omitted fields can be told apart
// from zero values. Anonymous defaults to true.
type SubmitReportRequest struct {
	Type        *string          `json:"type"`
	Severity    *int             `json:"severity"`
	Location    *models.Location `json:"location"`
	Description *string          `json:"description"`
	Anonymous   *bool            `json:"anonymous,omitempty"`
}
