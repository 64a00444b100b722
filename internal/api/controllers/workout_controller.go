package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"zfit/internal/models/request_models"
	"zfit/internal/services"
	"zfit/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{
		workoutService: workoutService,
	}
}

// History godoc
// @Summary Get workout history
// @Description Completed sessions of the current profile, newest first
// @Tags Workouts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/history [get]
func (w *WorkoutController) History(c *gin.Context) {
	workouts, err := w.workoutService.History(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workouts, "Workout history fetched successfully")
}

func (w *WorkoutController) Save(c *gin.Context) {
	var req request_models.SaveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	workout, err := w.workoutService.Save(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workout, "Workout saved successfully")
}
