package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

const (
	analysisConfidence = 0.85
	fallbackConfidence = 0.3
	fallbackDistress   = 0.5
)

const distressSystemPrompt = `You are an AI assistant analyzing text for distress signals in a women's safety app. ` +
	`Analyze the given text and determine if it indicates distress, danger, or emergency. ` +
	`Respond ONLY with a JSON object containing: {"distress_level": (0-1 float), "triggers": [array of detected triggers like 'fear', 'threat', 'violence'], "recommendation": "action to take"}. ` +
	`Be sensitive and accurate.`

var errMissingAPIKey = errors.New("LLM API key not configured")

// Analysis is the classifier outcome. Payload is always usable; when Fallback
// is set, Reason holds the cause.
type Analysis struct {
	Payload  dto.DistressAnalysis
	Fallback bool
	Reason   error
}

type DistressService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	hasKey  bool
}

func NewDistressService(cfg *config.Config) *DistressService {
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMAPIURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.LLMAPIURL, "/")
	}
	return &DistressService{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.LLMModel,
		timeout: cfg.AITimeout,
		hasKey:  cfg.LLMAPIKey != "",
	}
}

// Analyze classifies text. It never fails; provider problems yield the fallback payload.
func (s *DistressService) Analyze(ctx context.Context, userID, text string, loc *models.Location) Analysis {
	payload, err := s.classify(ctx, userID, text, loc)
	if err != nil {
		slog.Error("AI analysis error", "error", err, "user_id", userID)
		return Analysis{Payload: fallbackAnalysis(), Fallback: true, Reason: err}
	}
	return Analysis{Payload: payload}
}

type distressResult struct {
	DistressLevel  *float64 `json:"distress_level"`
	Triggers       []string `json:"triggers"`
	Recommendation *string  `json:"recommendation"`
}

func (s *DistressService) classify(ctx context.Context, userID, text string, loc *models.Location) (dto.DistressAnalysis, error) {
	if !s.hasKey {
		return dto.DistressAnalysis{}, errMissingAPIKey
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := "Analyze this text for distress: " + text
	if loc != nil {
		prompt += fmt.Sprintf("\nReported location: %.5f, %.5f", loc.Latitude, loc.Longitude)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: distressSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		User: userID,
	})
	if err != nil {
		return dto.DistressAnalysis{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return dto.DistressAnalysis{}, errors.New("empty response from API")
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)

	var result distressResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return dto.DistressAnalysis{}, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	analysis := dto.DistressAnalysis{
		Triggers:       result.Triggers,
		Recommendation: "Monitor situation",
		Confidence:     analysisConfidence,
	}
	if result.DistressLevel != nil {
		analysis.DistressLevel = *result.DistressLevel
	}
	if result.Recommendation != nil {
		analysis.Recommendation = *result.Recommendation
	}
	if analysis.Triggers == nil {
		analysis.Triggers = []string{}
	}
	return analysis, nil
}

func fallbackAnalysis() dto.DistressAnalysis {
	return dto.DistressAnalysis{
		DistressLevel:  fallbackDistress,
		Triggers:       []string{"analysis_error"},
		Recommendation: "Unable to analyze, recommend manual review",
		Confidence:     fallbackConfidence,
	}
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
