package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"REDIS_URL", "ANALYZE_RATE_PER_SEC", "ANALYZE_BURST", "TRUST_PROXY_HEADERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 1.0, cfg.AnalyzeRatePerSec)
	assert.Equal(t, 5, cfg.AnalyzeBurst)
	assert.False(t, cfg.AnalyzerEnabled())
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1/")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ANALYZE_RATE_PER_SEC", "0.5")
	t.Setenv("ANALYZE_BURST", "3")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, "http://localhost:11434/v1/", cfg.OpenAIBaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 0.5, cfg.AnalyzeRatePerSec)
	assert.Equal(t, 3, cfg.AnalyzeBurst)
	assert.True(t, cfg.AnalyzerEnabled())
	assert.True(t, cfg.TrustProxyHeaders)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("ANALYZE_RATE_PER_SEC", "fast")
	t.Setenv("ANALYZE_BURST", "-2")
	t.Setenv("TRUST_PROXY_HEADERS", "sometimes")

	cfg := Load()

	assert.Equal(t, 1.0, cfg.AnalyzeRatePerSec)
	assert.Equal(t, 5, cfg.AnalyzeBurst)
	assert.False(t, cfg.TrustProxyHeaders)
}
