package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmigo/internal/models/request_models"
	"tripmigo/internal/services"
	"tripmigo/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
	logger             *zap.Logger
}

func NewDestinationController(destinationService services.DestinationServiceInterface, logger *zap.Logger) *DestinationController {
	return &DestinationController{destinationService: destinationService, logger: logger}
}

// ListDestinations godoc
// @Summary List catalog destinations
// @Tags Destinations
// @Produce json
// @Param search query string false "Substring of name, country or description"
// @Param limit query int false "Page size (1-50)"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	var req request_models.DestinationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp := d.destinationService.ListDestinations(req.Search, req.Limit)
	utils.RespondSuccess(c, resp, "Destinations fetched successfully")
}

func (d *DestinationController) PopularDestinations(c *gin.Context) {
	var req request_models.PopularDestinationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	destinations := d.destinationService.PopularDestinations(req.Limit)
	utils.RespondSuccess(c, gin.H{"destinations": destinations}, "Popular destinations fetched successfully")
}

// GetDestinationDetails godoc
// @Summary Destination details with AI insights
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (d *DestinationController) GetDestinationDetails(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	details, err := d.destinationService.GetDestinationDetails(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, d.logger, err)
		return
	}

	utils.RespondSuccess(c, details, "Destination fetched successfully")
}

func (d *DestinationController) NearbyAttractions(c *gin.Context) {
	var req request_models.NearbySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Location is required")
		return
	}

	places, err := d.destinationService.NearbyAttractions(c.Request.Context(), req.Location, req.Radius, req.PlaceType)
	if err != nil {
		utils.HandleServiceError(c, d.logger, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"attractions": places}, "Nearby attractions fetched successfully")
}

func (d *DestinationController) PopularTrips(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"trips": d.destinationService.PopularTrips()}, "Popular trips fetched successfully")
}
