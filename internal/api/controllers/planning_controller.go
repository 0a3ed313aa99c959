package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmigo/internal/models/request_models"
	"tripmigo/internal/services"
	"tripmigo/pkg/utils"
)

type PlanningController struct {
	planningService    services.PlanningServiceInterface
	destinationService services.DestinationServiceInterface
	logger             *zap.Logger
}

func NewPlanningController(
	planningService services.PlanningServiceInterface,
	destinationService services.DestinationServiceInterface,
	logger *zap.Logger,
) *PlanningController {
	return &PlanningController{
		planningService:    planningService,
		destinationService: destinationService,
		logger:             logger,
	}
}

type startSessionBody struct {
	UserID string `json:"user_id"`
}

// StartSession godoc
// @Summary Start a planning session
// @Tags Planning
// @Produce json
// @Param user_id query string false "Owner of the session"
// @Success 200 {object} utils.APIResponse
// @Router /planning/session/start [post]
func (p *PlanningController) StartSession(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" && c.Request.ContentLength > 0 {
		var body startSessionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
		userID = body.UserID
	}

	session, err := p.planningService.StartSession(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, session, "Planning session started")
}

func (p *PlanningController) GetSession(c *gin.Context) {
	session, err := p.planningService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, session, "Planning session fetched successfully")
}

// UpdateStep godoc
// @Summary Record the data of one planning step
// @Tags Planning
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param step path int true "Step number (1-6)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planning/session/{id}/step/{step} [put]
func (p *PlanningController) UpdateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Step must be a number")
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.planningService.UpdateStep(c.Request.Context(), c.Param("id"), step, data)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, "Step updated successfully")
}

func (p *PlanningController) GenerateItinerary(c *gin.Context) {
	resp, err := p.planningService.GenerateItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

func (p *PlanningController) DestinationSuggestions(c *gin.Context) {
	var req request_models.DestinationSuggestionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Interests, budget and duration are required")
		return
	}

	resp := p.destinationService.SuggestDestinations(req.Interests, req.Budget)
	utils.RespondSuccess(c, resp, "Suggestions fetched successfully")
}
