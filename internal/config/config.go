package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port string
	Env  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	RedisURL          string
	AnalyzeRatePerSec float64
	AnalyzeBurst      int

	// TrustProxyHeaders keys rate limits on X-Forwarded-For / X-Real-IP. Enable only
	// behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		AnalyzeRatePerSec: getEnvFloat("ANALYZE_RATE_PER_SEC", 1),
		AnalyzeBurst:      getEnvInt("ANALYZE_BURST", 5),
		TrustProxyHeaders: getEnvBool("TRUST_PROXY_HEADERS", false),
	}

	if cfg.Env == "production" && cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set; strength analysis is disabled")
	}

	return cfg
}

// AnalyzerEnabled reports whether enough settings are present to reach the model.
func (c Config) AnalyzerEnabled() bool {
	return c.OpenAIAPIKey != "" && c.OpenAIModel != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
