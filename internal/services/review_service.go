package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/models/response_models"
)

type ReviewServiceInterface interface {
	SummarizeReviews(ctx context.Context, reviews []string) response_models.ReviewSummaryResponse
}

type ReviewService struct {
	pipeline *aipipeline.Pipeline
	logger   *zap.Logger
}

func NewReviewService(pipeline *aipipeline.Pipeline, logger *zap.Logger) ReviewServiceInterface {
	return &ReviewService{pipeline: pipeline, logger: logger.Named("reviews")}
}

// SummarizeReviews skips the model entirely when no review has any text.
func (s *ReviewService) SummarizeReviews(ctx context.Context, reviews []string) response_models.ReviewSummaryResponse {
	cleaned := make([]string, 0, len(reviews))
	for _, r := range reviews {
		if r = strings.TrimSpace(r); r != "" {
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) == 0 {
		return response_models.ReviewSummaryResponse{Summary: aipipeline.EmptyReviewSummary(), Source: string(aipipeline.SourceFallback)}
	}

	result := aipipeline.Run(ctx, s.pipeline, aipipeline.ReviewUseCase(cleaned, s.logger))
	return response_models.ReviewSummaryResponse{Summary: result.Value, Source: string(result.Source)}
}
