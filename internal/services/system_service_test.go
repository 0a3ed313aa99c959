package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/config"
)

func TestSystemService_Unconfigured(t *testing.T) {
	cfg := &config.Config{AI: config.AIConfig{Provider: "gemini"}}
	svc := NewSystemService(cfg, aipipeline.NewGateway(nil, zaptest.NewLogger(t)), newTestPlaces(t, nil))

	health := svc.Health()
	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.Services["ai"])
	assert.False(t, health.Services["maps"])
	assert.False(t, health.Environment["ai_api_configured"])
	assert.Empty(t, health.Model)

	app := svc.AppConfig()
	assert.Empty(t, app.Features)
	assert.Equal(t, AppVersion, app.Version)
}

func TestSystemService_Configured(t *testing.T) {
	cfg := &config.Config{
		AI:   config.AIConfig{Provider: "gemini", GeminiAPIKey: "g"},
		Maps: config.MapsConfig{APIKey: "maps-key"},
	}
	svc := NewSystemService(cfg, aipipeline.NewGateway(&fixedModel{}, zaptest.NewLogger(t)), newTestPlaces(t, parisProvider()))

	health := svc.Health()
	assert.True(t, health.Services["ai"])
	assert.True(t, health.Services["maps"])
	assert.True(t, health.Environment["maps_api_configured"])
	assert.Equal(t, "fixed", health.Model)

	assert.Equal(t, "maps-key", svc.MapsConfig().MapsAPIKey)
	assert.Equal(t, []string{"Google Maps Integration", "AI-Powered Planning"}, svc.AppConfig().Features)
}
