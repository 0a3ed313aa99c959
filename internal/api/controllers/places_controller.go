package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmigo/internal/models/request_models"
	"tripmigo/internal/models/response_models"
	"tripmigo/internal/services"
	"tripmigo/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
	logger        *zap.Logger
}

func NewPlacesController(placesService services.PlacesServiceInterface, logger *zap.Logger) *PlacesController {
	return &PlacesController{placesService: placesService, logger: logger}
}

func (p *PlacesController) SearchPlaces(c *gin.Context) {
	var req request_models.PlaceSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	places, err := p.placesService.SearchPlaces(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.PlaceSearchResponse{Results: places, Status: "OK"}, "Places fetched successfully")
}

func (p *PlacesController) GetPlaceDetails(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	details, err := p.placesService.GetPlaceDetails(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, details, "Place details fetched successfully")
}

func (p *PlacesController) GetDirections(c *gin.Context) {
	var req request_models.DirectionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Origin and destination are required")
		return
	}

	routes, err := p.placesService.GetDirections(c.Request.Context(), req.Origin, req.Destination, req.Mode)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.DirectionsResponse{Routes: routes, Status: "OK"}, "Directions fetched successfully")
}

func (p *PlacesController) Geocode(c *gin.Context) {
	var req request_models.GeocodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Address is required")
		return
	}

	results, err := p.placesService.Geocode(c.Request.Context(), req.Address)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.GeocodeResponse{Results: results, Status: "OK"}, "Address geocoded successfully")
}
