package dto

import "github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"

type NearbyZonesRequest struct {
	Latitude  *float64 `json:"latitude" query:"latitude"`
	Longitude *float64 `json:"longitude" query:"longitude"`
	Radius    *float64 `json:"radius,omitempty" query:"radius"`
}

// NearbyZone is a safety zone annotated with its rounded distance in meters.
type NearbyZone struct {
	models.SafetyZone
	Distance int64 `json:"distance"`
}

type FakeCallRequest struct {
	CallerName string `json:"caller_name"`
}

type FakeCallResponse struct {
	Caller    string `json:"caller"`
	Message   string `json:"message"`
	Duration  int    `json:"duration"`
	Timestamp string `json:"timestamp"`
}
