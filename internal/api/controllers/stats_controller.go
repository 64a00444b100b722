package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zfit/internal/models/request_models"
	"zfit/internal/services"
	"zfit/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

func (s *StatsController) Daily(c *gin.Context) {
	stats, err := s.statsService.Daily(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Daily stats fetched successfully")
}

func (s *StatsController) Update(c *gin.Context) {
	var req request_models.UpdateDailyStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.statsService.Update(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Daily stats updated successfully")
}
