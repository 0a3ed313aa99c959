package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmigo/internal/models/request_models"
	"tripmigo/internal/services"
	"tripmigo/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	reviewService    services.ReviewServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	reviewService services.ReviewServiceInterface,
	logger *zap.Logger,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		reviewService:    reviewService,
		logger:           logger,
	}
}

// bindTripRequest accepts the canonical shape and its legacy spellings.
func (i *ItineraryController) bindTripRequest(c *gin.Context) (request_models.TripRequest, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return request_models.TripRequest{}, false
	}
	// The optimize endpoint nests the trip next to its preferences.
	if nested, ok := raw["request"].(map[string]any); ok {
		raw = nested
	}

	trip, err := request_models.NormalizeTripRequest(raw)
	if err != nil {
		i.logger.Info("rejected trip request", zap.Error(err))
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip request")
		return request_models.TripRequest{}, false
	}
	return trip, true
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip description"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	trip, ok := i.bindTripRequest(c)
	if !ok {
		return
	}

	resp := i.itineraryService.GenerateItinerary(c.Request.Context(), trip)
	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// SummarizeReviews godoc
// @Summary Summarize travel reviews
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ReviewSummaryRequest true "Reviews"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/reviews/summarize [post]
func (i *ItineraryController) SummarizeReviews(c *gin.Context) {
	var req request_models.ReviewSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if len(req.Reviews) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No reviews provided")
		return
	}

	resp := i.reviewService.SummarizeReviews(c.Request.Context(), req.Reviews)
	utils.RespondSuccess(c, resp, "Reviews summarized successfully")
}

func (i *ItineraryController) OptimizeItinerary(c *gin.Context) {
	trip, ok := i.bindTripRequest(c)
	if !ok {
		return
	}

	resp := i.itineraryService.OptimizeItinerary(c.Request.Context(), trip)
	utils.RespondSuccess(c, resp, "Itinerary optimized successfully")
}

func (i *ItineraryController) GetTemplates(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"templates": i.itineraryService.Templates()}, "Templates fetched successfully")
}
