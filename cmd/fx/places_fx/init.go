package places_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmigo/internal/config"
	"tripmigo/internal/services"
)

var Module = fx.Provide(providePlacesService)

func providePlacesService(cfg *config.Config, logger *zap.Logger) (services.PlacesServiceInterface, error) {
	client, err := services.NewGooglePlaces(cfg.Maps.APIKey)
	if err != nil {
		return nil, err
	}
	// a nil *GooglePlaces must not reach the interface
	if client == nil {
		return services.NewPlacesService(nil, cfg.Maps.APIKey, logger), nil
	}
	return services.NewPlacesService(client, cfg.Maps.APIKey, logger), nil
}
