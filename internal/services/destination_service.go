package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/models/response_models"
	"tripmigo/internal/repositories"
	"tripmigo/pkg/utils"
)

const (
	DefaultDestinationLimit = 10
	DefaultPopularLimit     = 5
)

type DestinationServiceInterface interface {
	ListDestinations(search string, limit int) response_models.DestinationListResponse
	PopularDestinations(limit int) []response_models.Destination
	GetDestinationDetails(ctx context.Context, id string) (response_models.DestinationDetailsResponse, error)
	NearbyAttractions(ctx context.Context, location string, radius int, placeType string) ([]response_models.Place, error)
	PopularTrips() []response_models.SharedTrip
	SuggestDestinations(interests, budget string) response_models.DestinationSuggestionsResponse
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	placesService   PlacesServiceInterface
	pipeline        *aipipeline.Pipeline
	logger          *zap.Logger
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	placesService PlacesServiceInterface,
	pipeline *aipipeline.Pipeline,
	logger *zap.Logger,
) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		placesService:   placesService,
		pipeline:        pipeline,
		logger:          logger.Named("destinations"),
	}
}

func (s *DestinationService) ListDestinations(search string, limit int) response_models.DestinationListResponse {
	if limit <= 0 {
		limit = DefaultDestinationLimit
	}
	destinations := s.destinationRepo.Search(search, limit)
	return response_models.DestinationListResponse{
		Destinations: destinations,
		Total:        len(destinations),
		Search:       search,
		Limit:        limit,
	}
}

func (s *DestinationService) PopularDestinations(limit int) []response_models.Destination {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	return s.destinationRepo.TopRated(limit)
}

func (s *DestinationService) GetDestinationDetails(ctx context.Context, id string) (response_models.DestinationDetailsResponse, error) {
	destination, err := s.destinationRepo.FindById(id)
	if err != nil {
		return response_models.DestinationDetailsResponse{}, err
	}
	if destination == nil {
		return response_models.DestinationDetailsResponse{}, utils.ErrDestinationMissing
	}

	insights := aipipeline.Run(ctx, s.pipeline, aipipeline.InsightsUseCase(destination.Name))
	resp := response_models.DestinationDetailsResponse{
		Destination:    *destination,
		AIInsights:     insights.Value,
		InsightsSource: string(insights.Source),
	}

	if s.placesService.Healthy() {
		details, err := s.placesService.LookupDestination(ctx, destination.Name)
		if err != nil {
			resp.PlaceDetailsError = "Could not fetch place details"
		} else {
			resp.PlaceDetails = &details
		}
	}
	return resp, nil
}

func (s *DestinationService) NearbyAttractions(ctx context.Context, location string, radius int, placeType string) ([]response_models.Place, error) {
	return s.placesService.NearbySearch(ctx, location, radius, placeType)
}

func (s *DestinationService) PopularTrips() []response_models.SharedTrip {
	return s.destinationRepo.PopularTrips()
}

var interestSuggestions = []struct {
	keyword    string
	suggestion response_models.DestinationSuggestion
}{
	{"culture", response_models.DestinationSuggestion{Name: "Rome, Italy", Reason: "Rich historical culture and architecture"}},
	{"nature", response_models.DestinationSuggestion{Name: "New Zealand", Reason: "Stunning natural landscapes and outdoor activities"}},
	{"food", response_models.DestinationSuggestion{Name: "Bangkok, Thailand", Reason: "World-class street food and culinary experiences"}},
}

var budgetSuggestions = map[string]response_models.DestinationSuggestion{
	"budget": {Name: "Prague, Czech Republic", Reason: "Beautiful city with affordable prices"},
	"luxury": {Name: "Maldives", Reason: "Ultimate luxury resort destination"},
}

// SuggestDestinations returns the static list when no model is configured and
// interest/budget matches otherwise.
func (s *DestinationService) SuggestDestinations(interests, budget string) response_models.DestinationSuggestionsResponse {
	if !s.pipeline.Healthy() {
		return response_models.DestinationSuggestionsResponse{
			Suggestions: s.destinationRepo.StaticSuggestions(),
			Source:      "static",
		}
	}

	lowered := strings.ToLower(interests)
	suggestions := make([]response_models.DestinationSuggestion, 0, len(interestSuggestions)+1)
	for _, is := range interestSuggestions {
		if strings.Contains(lowered, is.keyword) {
			suggestions = append(suggestions, is.suggestion)
		}
	}
	if bs, ok := budgetSuggestions[strings.ToLower(strings.TrimSpace(budget))]; ok {
		suggestions = append(suggestions, bs)
	}
	if len(suggestions) == 0 {
		return response_models.DestinationSuggestionsResponse{
			Suggestions: s.destinationRepo.StaticSuggestions(),
			Source:      "static",
		}
	}
	return response_models.DestinationSuggestionsResponse{Suggestions: suggestions, Source: "personalized"}
}
