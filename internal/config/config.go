package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Session exchange
	AuthSessionURL string
	AuthTimeout    time.Duration
	SessionTTL     time.Duration

	// Distress classifier (OpenAI-compatible endpoint)
	LLMAPIKey string
	LLMAPIURL string
	LLMModel  string
	AITimeout time.Duration

	// Zone catalog cache
	CacheType    string
	RedisURL     string
	ZoneCacheTTL time.Duration

	// Admin
	AdminToken string

	// Server
	Port        string
	CORSOrigins string
	AppEnv      string
	SentryDSN   string

	LogRetentionDays int
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "safeher"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		AuthSessionURL: getEnv("AUTH_SESSION_URL", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),
		AuthTimeout:    parseDuration(getEnv("AUTH_TIMEOUT", "10s"), 10*time.Second),
		SessionTTL:     parseDuration(getEnv("SESSION_TTL", "168h"), 7*24*time.Hour),

		LLMAPIKey: getEnv("LLM_API_KEY", os.Getenv("EMERGENT_LLM_KEY")),
		LLMAPIURL: getEnv("LLM_API_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:  getEnv("LLM_MODEL", "gemini-3-flash-preview"),
		AITimeout: parseDuration(getEnv("AI_TIMEOUT", "15s"), 15*time.Second),

		CacheType:    getEnv("CACHE_TYPE", "local"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
		ZoneCacheTTL: parseDuration(getEnv("ZONE_CACHE_TTL", "5m"), 5*time.Minute),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AppEnv:      getEnv("APP_ENV", "development"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),

		LogRetentionDays: getEnvAsInt("LOG_RETENTION_DAYS", 30),
	}
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN for postgres.
// For the sqlite driver DB_NAME is used as the file path.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBDriver == "sqlite" {
		return c.DBName
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return v
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
