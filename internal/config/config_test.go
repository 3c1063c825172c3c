package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-userreg/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, time.Second, cfg.SlowRequestThreshold)
	assert.Equal(t, 10*time.Millisecond, cfg.RepoLatency)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SLOW_REQUEST_THRESHOLD", "250ms")
	t.Setenv("REPO_LATENCY", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.SlowRequestThreshold)
	assert.Equal(t, time.Duration(0), cfg.RepoLatency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
