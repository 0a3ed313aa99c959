package services

import (
	"os"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/config"
	"tripmigo/internal/models/response_models"
)

const AppVersion = "2.0.0"

type SystemServiceInterface interface {
	MapsConfig() response_models.MapsConfig
	AppConfig() response_models.AppConfig
	Health() response_models.HealthResponse
}

type SystemService struct {
	cfg           *config.Config
	gateway       *aipipeline.Gateway
	placesService PlacesServiceInterface
}

func NewSystemService(cfg *config.Config, gateway *aipipeline.Gateway, placesService PlacesServiceInterface) SystemServiceInterface {
	return &SystemService{cfg: cfg, gateway: gateway, placesService: placesService}
}

func (s *SystemService) MapsConfig() response_models.MapsConfig {
	return response_models.MapsConfig{MapsAPIKey: s.placesService.APIKey()}
}

func (s *SystemService) AppConfig() response_models.AppConfig {
	features := make([]string, 0, 2)
	if s.placesService.Healthy() {
		features = append(features, "Google Maps Integration")
	}
	if s.gateway.Healthy() {
		features = append(features, "AI-Powered Planning")
	}
	return response_models.AppConfig{
		Maps:     s.MapsConfig(),
		Features: features,
		Version:  AppVersion,
	}
}

// Health reports dependency status. The service itself stays healthy when a
// dependency is missing since every enrichment has a fallback.
func (s *SystemService) Health() response_models.HealthResponse {
	_, err := os.Stat(".env")
	return response_models.HealthResponse{
		Status: "healthy",
		Services: map[string]bool{
			"ai":   s.gateway.Healthy(),
			"maps": s.placesService.Healthy(),
		},
		Environment: map[string]bool{
			"ai_api_configured":   s.cfg.AI.APIKey() != "",
			"maps_api_configured": s.cfg.Maps.APIKey != "",
			"dotenv_file_exists":  err == nil,
		},
		Model: s.gateway.ModelName(),
	}
}
