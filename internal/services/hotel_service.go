package services

import (
	"context"

	"go.uber.org/zap"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/models/request_models"
	"tripmigo/internal/models/response_models"
)

type HotelServiceInterface interface {
	RecommendHotels(ctx context.Context, req request_models.HotelSearchRequest) response_models.HotelRecommendationsResponse
}

type HotelService struct {
	pipeline *aipipeline.Pipeline
	logger   *zap.Logger
}

func NewHotelService(pipeline *aipipeline.Pipeline, logger *zap.Logger) HotelServiceInterface {
	return &HotelService{pipeline: pipeline, logger: logger.Named("hotels")}
}

func (s *HotelService) RecommendHotels(ctx context.Context, req request_models.HotelSearchRequest) response_models.HotelRecommendationsResponse {
	req = req.WithDefaults()
	result := aipipeline.Run(ctx, s.pipeline, aipipeline.HotelUseCase(req, s.logger))

	return response_models.HotelRecommendationsResponse{
		Hotels:      result.Value,
		Destination: req.Destination,
		Budget:      req.Budget,
		Guests:      req.Guests,
		Duration:    req.Duration,
		Source:      string(result.Source),
	}
}
