package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"tripmigo/internal/models/response_models"
	"tripmigo/pkg/utils"
)

type PlacesErrorKind string

const (
	PlacesUnavailable   PlacesErrorKind = "unavailable"
	PlacesNotFound      PlacesErrorKind = "not_found"
	PlacesInvalidInput  PlacesErrorKind = "invalid_input"
	PlacesRemoteFailure PlacesErrorKind = "remote_failure"
)

// PlacesError is returned by every passthrough lookup. Message is safe to
// show to clients; Err carries the provider diagnostic.
type PlacesError struct {
	Kind    PlacesErrorKind
	Message string
	Err     error
}

func (e *PlacesError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("places %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("places %s: %s", e.Kind, e.Message)
}

func (e *PlacesError) Unwrap() error { return e.Err }

// Is lets handlers match places failures against the shared HTTP sentinels.
func (e *PlacesError) Is(target error) bool {
	switch e.Kind {
	case PlacesUnavailable:
		return target == utils.ErrServiceUnavailable
	case PlacesNotFound:
		return target == utils.ErrNotFound
	case PlacesInvalidInput:
		return target == utils.ErrInvalidInput
	case PlacesRemoteFailure:
		return target == utils.ErrUpstreamFailure
	}
	return false
}

func placesError(kind PlacesErrorKind, message string, err error) *PlacesError {
	return &PlacesError{Kind: kind, Message: message, Err: err}
}

const (
	DefaultNearbyRadius = 5000
	DefaultNearbyType   = "tourist_attraction"
	DefaultTravelMode   = "driving"
)

var travelModes = []string{"driving", "walking", "bicycling", "transit"}

func isTravelMode(mode string) bool { return slices.Contains(travelModes, mode) }

// PlacesProvider is the maps backend. Implementations return *PlacesError.
type PlacesProvider interface {
	TextSearch(ctx context.Context, query string) ([]response_models.Place, error)
	PlaceDetails(ctx context.Context, placeID string) (response_models.PlaceDetails, error)
	Directions(ctx context.Context, origin, destination, mode string) ([]response_models.DirectionsRoute, error)
	Geocode(ctx context.Context, address string) ([]response_models.GeocodeResult, error)
	NearbySearch(ctx context.Context, location response_models.LatLng, radius int, placeType string) ([]response_models.Place, error)
}

type PlacesServiceInterface interface {
	Healthy() bool
	APIKey() string
	SearchPlaces(ctx context.Context, query string) ([]response_models.Place, error)
	GetPlaceDetails(ctx context.Context, placeID string) (response_models.PlaceDetails, error)
	GetDirections(ctx context.Context, origin, destination, mode string) ([]response_models.DirectionsRoute, error)
	Geocode(ctx context.Context, address string) ([]response_models.GeocodeResult, error)
	NearbySearch(ctx context.Context, location string, radius int, placeType string) ([]response_models.Place, error)
	LookupDestination(ctx context.Context, destination string) (response_models.PlaceDetails, error)
}

type PlacesService struct {
	provider PlacesProvider
	apiKey   string
	logger   *zap.Logger
}

// NewPlacesService accepts a nil provider, in which case every lookup reports
// the service as unavailable.
func NewPlacesService(provider PlacesProvider, apiKey string, logger *zap.Logger) PlacesServiceInterface {
	if provider == nil {
		logger.Warn("maps API key not configured, places lookups disabled")
	}
	return &PlacesService{provider: provider, apiKey: apiKey, logger: logger.Named("places")}
}

func (s *PlacesService) Healthy() bool { return s.provider != nil }

func (s *PlacesService) APIKey() string {
	if s.apiKey == "" {
		return "demo_key_not_configured"
	}
	return s.apiKey
}

func (s *PlacesService) ready() error {
	if s.provider == nil {
		return placesError(PlacesUnavailable, "Google Maps service not available", nil)
	}
	return nil
}

func (s *PlacesService) SearchPlaces(ctx context.Context, query string) ([]response_models.Place, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, placesError(PlacesInvalidInput, "Empty query provided", nil)
	}

	places, err := s.provider.TextSearch(ctx, query)
	if err != nil {
		s.logFailure("text search", err, zap.String("query", query))
		return nil, err
	}
	s.logger.Debug("text search", zap.String("query", query), zap.Int("results", len(places)))
	return places, nil
}

func (s *PlacesService) GetPlaceDetails(ctx context.Context, placeID string) (response_models.PlaceDetails, error) {
	if err := s.ready(); err != nil {
		return response_models.PlaceDetails{}, err
	}
	if strings.TrimSpace(placeID) == "" {
		return response_models.PlaceDetails{}, placesError(PlacesInvalidInput, "Place id is required", nil)
	}

	details, err := s.provider.PlaceDetails(ctx, placeID)
	if err != nil {
		s.logFailure("place details", err, zap.String("place_id", placeID))
		return response_models.PlaceDetails{}, err
	}
	return details, nil
}

func (s *PlacesService) GetDirections(ctx context.Context, origin, destination, mode string) ([]response_models.DirectionsRoute, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return nil, placesError(PlacesInvalidInput, "Origin and destination are required", nil)
	}
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = DefaultTravelMode
	}
	if !isTravelMode(mode) {
		return nil, placesError(PlacesInvalidInput, "Unsupported travel mode", nil)
	}

	routes, err := s.provider.Directions(ctx, origin, destination, mode)
	if err != nil {
		s.logFailure("directions", err, zap.String("origin", origin), zap.String("destination", destination))
		return nil, err
	}
	if len(routes) == 0 {
		return nil, placesError(PlacesNotFound, "No routes found", nil)
	}
	return routes, nil
}

func (s *PlacesService) Geocode(ctx context.Context, address string) ([]response_models.GeocodeResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(address) == "" {
		return nil, placesError(PlacesInvalidInput, "Address is required", nil)
	}

	results, err := s.provider.Geocode(ctx, address)
	if err != nil {
		s.logFailure("geocode", err, zap.String("address", address))
		return nil, err
	}
	if len(results) == 0 {
		return nil, placesError(PlacesNotFound, "Address not found", nil)
	}
	return results, nil
}

// NearbySearch geocodes location and searches around its first match.
func (s *PlacesService) NearbySearch(ctx context.Context, location string, radius int, placeType string) ([]response_models.Place, error) {
	results, err := s.Geocode(ctx, location)
	if err != nil {
		var pe *PlacesError
		if errors.As(err, &pe) && pe.Kind == PlacesNotFound {
			return nil, placesError(PlacesNotFound, "Location not found", pe.Err)
		}
		return nil, err
	}
	if radius <= 0 {
		radius = DefaultNearbyRadius
	}
	if placeType == "" {
		placeType = DefaultNearbyType
	}

	places, err := s.provider.NearbySearch(ctx, results[0].Location, radius, placeType)
	if err != nil {
		s.logFailure("nearby search", err, zap.String("location", location))
		return nil, err
	}
	return places, nil
}

// LookupDestination resolves a destination name to the details of its top
// text-search match.
func (s *PlacesService) LookupDestination(ctx context.Context, destination string) (response_models.PlaceDetails, error) {
	places, err := s.SearchPlaces(ctx, destination)
	if err != nil {
		return response_models.PlaceDetails{}, err
	}
	if len(places) == 0 {
		return response_models.PlaceDetails{}, placesError(PlacesNotFound, "No places found", nil)
	}
	return s.GetPlaceDetails(ctx, places[0].PlaceID)
}

func (s *PlacesService) logFailure(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("operation", op), zap.Error(err))
	var pe *PlacesError
	if errors.As(err, &pe) && pe.Kind == PlacesNotFound {
		s.logger.Info("places lookup returned nothing", fields...)
		return
	}
	s.logger.Warn("places lookup failed", fields...)
}
