package dto

import "github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"

type AnalyzeDistressRequest struct {
	Text     *string          `json:"text"`
	Location *models.Location `json:"location,omitempty"`
}

type DistressAnalysis struct {
	DistressLevel  float64  `json:"distress_level"`
	Triggers       []string `json:"triggers"`
	Recommendation string   `json:"recommendation"`
	Confidence     float64  `json:"confidence"`
}

type DistressResponse struct {
	DistressAnalysis
	Timestamp string `json:"timestamp"`
}
