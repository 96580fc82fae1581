package dto

import "github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"

// SessionResponse is the signed-in user plus the token the client should
// present on later requests.
type SessionResponse struct {
	models.User
	SessionToken string `json:"session_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
