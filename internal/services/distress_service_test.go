package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func llmServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newDistressService(url string) *DistressService {
	return NewDistressService(&config.Config{
		LLMAPIKey: "test-key",
		LLMAPIURL: url,
		LLMModel:  "test-model",
		AITimeout: 2 * time.Second,
	})
}

func assertFallback(t *testing.T, a Analysis) {
	t.Helper()
	assert.True(t, a.Fallback)
	assert.Error(t, a.Reason)
	assert.Equal(t, 0.5, a.Payload.DistressLevel)
	assert.Equal(t, []string{"analysis_error"}, a.Payload.Triggers)
	assert.Equal(t, "Unable to analyze, recommend manual review", a.Payload.Recommendation)
	assert.Equal(t, 0.3, a.Payload.Confidence)
}

func TestAnalyzeSuccess(t *testing.T) {
	srv := llmServer(t, http.StatusOK, "```json\n{\"distress_level\": 0.9, \"triggers\": [\"fear\", \"threat\"], \"recommendation\": \"Call emergency contacts\"}\n```")

	a := newDistressService(srv.URL).Analyze(context.Background(), "user_a", "someone is following me", nil)
	require.False(t, a.Fallback)
	assert.NoError(t, a.Reason)
	assert.Equal(t, 0.9, a.Payload.DistressLevel)
	assert.Equal(t, []string{"fear", "threat"}, a.Payload.Triggers)
	assert.Equal(t, "Call emergency contacts", a.Payload.Recommendation)
	assert.Equal(t, 0.85, a.Payload.Confidence)
}

func TestAnalyzeMissingFieldsDefault(t *testing.T) {
	srv := llmServer(t, http.StatusOK, `{"distress_level": 0.1}`)

	a := newDistressService(srv.URL).Analyze(context.Background(), "user_a", "nice day", nil)
	require.False(t, a.Fallback)
	assert.Equal(t, "Monitor situation", a.Payload.Recommendation)
	assert.NotNil(t, a.Payload.Triggers)
	assert.Empty(t, a.Payload.Triggers)
	assert.Equal(t, 0.85, a.Payload.Confidence)
}

func TestAnalyzeNonJSONFallsBack(t *testing.T) {
	srv := llmServer(t, http.StatusOK, "I think the person is fine.")

	assertFallback(t, newDistressService(srv.URL).Analyze(context.Background(), "user_a", "hello", nil))
}

func TestAnalyzeProviderErrorFallsBack(t *testing.T) {
	srv := llmServer(t, http.StatusInternalServerError, "")

	assertFallback(t, newDistressService(srv.URL).Analyze(context.Background(), "user_a", "help", nil))
}

func TestAnalyzeMissingKeyFallsBack(t *testing.T) {
	svc := NewDistressService(&config.Config{LLMAPIURL: "http://127.0.0.1:0"})

	a := svc.Analyze(context.Background(), "user_a", "help", nil)
	assertFallback(t, a)
	assert.ErrorIs(t, a.Reason, errMissingAPIKey)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`  {"a":1} `))
}
