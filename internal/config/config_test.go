package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, time.Second, cfg.AI.RetryBaseDelay)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "first_last", cfg.AI.Extractor)
	assert.Empty(t, cfg.AI.APIKey())
	assert.Len(t, cfg.CORS.AllowedOrigins, 2)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("GOOGLE_AI_API_KEY", "gemini-key")
	t.Setenv("GOOGLE_MAPS_API_KEY", "maps-key")
	t.Setenv("PORT", "9090")
	t.Setenv("AI_RETRY_BASE_DELAY", "250ms")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gemini-key", cfg.AI.APIKey())
	assert.Equal(t, "maps-key", cfg.Maps.APIKey)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.AI.RetryBaseDelay)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("ai:\n  provider: openai\n  openai_api_key: sk-test\nstore:\n  driver: redis\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "sk-test", cfg.AI.APIKey())
	assert.Equal(t, "redis", cfg.Store.Driver)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "llama")

	_, err := load(viper.New(), t.TempDir())
	assert.Error(t, err)
}

func TestLoad_Extractor(t *testing.T) {
	t.Setenv("AI_EXTRACTOR", "balanced")
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "balanced", cfg.AI.Extractor)

	t.Setenv("AI_EXTRACTOR", "balance")
	_, err = load(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai.extractor")
}
