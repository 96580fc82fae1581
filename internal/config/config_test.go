package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "SESSION_TTL", "LLM_API_KEY", "EMERGENT_LLM_KEY", "CACHE_TYPE", "LOG_RETENTION_DAYS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "local", cfg.CacheType)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Contains(t, cfg.AuthSessionURL, "/auth/v1/env/oauth/session-data")
	assert.Empty(t, cfg.LLMAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("EMERGENT_LLM_KEY", "legacy-key")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("AI_TIMEOUT", "not-a-duration")
	t.Setenv("LOG_RETENTION_DAYS", "seven")

	cfg := Load()
	assert.Equal(t, "legacy-key", cfg.LLMAPIKey)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15*time.Second, cfg.AITimeout)
	assert.Equal(t, 30, cfg.LogRetentionDays)

	t.Setenv("LLM_API_KEY", "primary")
	assert.Equal(t, "primary", Load().LLMAPIKey)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres", DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "safeher", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=safeher port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())

	cfg.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", cfg.DSN())

	assert.Equal(t, "local.db", (&Config{DBDriver: "sqlite", DBName: "local.db"}).DSN())
}
