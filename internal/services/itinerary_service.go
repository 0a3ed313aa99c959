package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/models/request_models"
	"tripmigo/internal/models/response_models"
	"tripmigo/internal/repositories"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, trip request_models.TripRequest) response_models.ItineraryResponse
	OptimizeItinerary(ctx context.Context, trip request_models.TripRequest) response_models.OptimizedItineraryResponse
	Templates() []response_models.ItineraryTemplate
}

type ItineraryService struct {
	pipeline        *aipipeline.Pipeline
	placesService   PlacesServiceInterface
	destinationRepo repositories.DestinationRepository
	logger          *zap.Logger
}

func NewItineraryService(
	pipeline *aipipeline.Pipeline,
	placesService PlacesServiceInterface,
	destinationRepo repositories.DestinationRepository,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		pipeline:        pipeline,
		placesService:   placesService,
		destinationRepo: destinationRepo,
		logger:          logger.Named("itinerary"),
	}
}

// GenerateItinerary always answers: model output when usable, the synthetic
// plan otherwise. Place details are attached when the maps lookup succeeds.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, trip request_models.TripRequest) response_models.ItineraryResponse {
	result := aipipeline.Run(ctx, s.pipeline, aipipeline.ItineraryUseCase(trip, s.logger))

	return response_models.ItineraryResponse{
		Itinerary:          result.Value.Days,
		PlaceDetails:       s.placeSummary(ctx, trip.Destination),
		TotalEstimatedCost: result.Value.TotalEstimatedCost,
		TravelTips:         result.Value.TravelTips,
		Description:        result.Value.Description,
		Source:             string(result.Source),
	}
}

func (s *ItineraryService) placeSummary(ctx context.Context, destination string) response_models.PlaceDetailsSummary {
	summary := response_models.PlaceDetailsSummary{Address: destination}
	if !s.placesService.Healthy() {
		return summary
	}

	details, err := s.placesService.LookupDestination(ctx, destination)
	if err != nil {
		s.logger.Debug("place details unavailable", zap.String("destination", destination), zap.Error(err))
		return summary
	}

	summary.PlaceID = details.PlaceID
	summary.Rating = details.Rating
	summary.Photos = details.Photos
	if details.Address != "" {
		summary.Address = details.Address
	}
	return summary
}

// OptimizeItinerary regenerates the plan and adds the fastest route from the
// trip's source. Route failures are reported inline.
func (s *ItineraryService) OptimizeItinerary(ctx context.Context, trip request_models.TripRequest) response_models.OptimizedItineraryResponse {
	result := aipipeline.Run(ctx, s.pipeline, aipipeline.ItineraryUseCase(trip, s.logger))

	resp := response_models.OptimizedItineraryResponse{
		Itinerary:          result.Value.Days,
		TotalEstimatedCost: result.Value.TotalEstimatedCost,
		TravelTips:         result.Value.TravelTips,
		Source:             string(result.Source),
	}

	if trip.Source == "" || !s.placesService.Healthy() {
		return resp
	}

	mode := strings.ToLower(trip.TravelMode)
	if !isTravelMode(mode) {
		mode = DefaultTravelMode
	}
	routes, err := s.placesService.GetDirections(ctx, trip.Source, trip.Destination, mode)
	if err != nil {
		resp.RouteError = "Could not fetch route info"
		return resp
	}
	resp.Route = &routes[0]
	resp.Optimized = true
	return resp
}

func (s *ItineraryService) Templates() []response_models.ItineraryTemplate {
	return s.destinationRepo.ItineraryTemplates()
}
