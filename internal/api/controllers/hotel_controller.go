package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmigo/internal/models/request_models"
	"tripmigo/internal/services"
	"tripmigo/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
	logger       *zap.Logger
}

func NewHotelController(hotelService services.HotelServiceInterface, logger *zap.Logger) *HotelController {
	return &HotelController{hotelService: hotelService, logger: logger}
}

// GetRecommendations godoc
// @Summary Recommend hotels for a destination
// @Tags Hotels
// @Produce json
// @Param destination query string true "Destination"
// @Param budget query string false "budget, medium or luxury"
// @Param guests query int false "Number of guests"
// @Param duration query int false "Nights"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /hotels/recommendations [get]
func (h *HotelController) GetRecommendations(c *gin.Context) {
	var req request_models.HotelSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp := h.hotelService.RecommendHotels(c.Request.Context(), req)
	utils.RespondSuccess(c, resp, "Hotels fetched successfully")
}
