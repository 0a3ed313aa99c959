package controllers

import (
	"github.com/gin-gonic/gin"

	"tripmigo/internal/services"
	"tripmigo/pkg/utils"
)

type SystemController struct {
	systemService services.SystemServiceInterface
}

func NewSystemController(systemService services.SystemServiceInterface) *SystemController {
	return &SystemController{systemService: systemService}
}

func (s *SystemController) MapsKey(c *gin.Context) {
	utils.RespondSuccess(c, s.systemService.MapsConfig(), "Maps configuration fetched successfully")
}

func (s *SystemController) AppConfig(c *gin.Context) {
	utils.RespondSuccess(c, s.systemService.AppConfig(), "App configuration fetched successfully")
}

// Health always answers 200; degraded services show up in the body.
func (s *SystemController) Health(c *gin.Context) {
	utils.RespondSuccess(c, s.systemService.Health(), "Service is running")
}
