package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Redis (optional; backs the lookup cache and the rate limiter)
	RedisURL string
	CacheTTL time.Duration

	// Naver SearchAd API
	NaverSearchAdCustomerID string
	NaverSearchAdAPIKey     string
	NaverSearchAdSecretKey  string

	// Naver open API (local search)
	NaverClientID     string
	NaverClientSecret string

	// MOIS population API
	MOISAPIKey string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Category template overrides (optional directory of *.yaml files)
	CategoriesDir string

	// Rate limiting
	RateLimitPerMinute int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":8000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getDuration("CACHE_TTL", time.Hour),

		NaverSearchAdCustomerID: getEnv("NAVER_SEARCH_AD_CUSTOMER_ID", ""),
		NaverSearchAdAPIKey:     getEnv("NAVER_SEARCH_AD_API_KEY", ""),
		NaverSearchAdSecretKey:  getEnv("NAVER_SEARCH_AD_SECRET_KEY", ""),

		NaverClientID:     getEnv("NAVER_CLIENT_ID", ""),
		NaverClientSecret: getEnv("NAVER_CLIENT_SECRET", ""),

		MOISAPIKey: getEnv("MOIS_API_KEY", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", ""),

		CategoriesDir: getEnv("CATEGORIES_DIR", ""),

		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// SearchAdConfigured reports whether SearchAd credentials are present.
func (c *Config) SearchAdConfigured() bool {
	return c.NaverSearchAdCustomerID != "" && c.NaverSearchAdAPIKey != "" && c.NaverSearchAdSecretKey != ""
}

// LocalSearchConfigured reports whether Naver open API credentials are present.
func (c *Config) LocalSearchConfigured() bool {
	return c.NaverClientID != "" && c.NaverClientSecret != ""
}
