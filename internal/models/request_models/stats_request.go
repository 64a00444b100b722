package request_models

type UpdateDailyStatsRequest struct {
	CaloriesBurned  int `json:"calories_burned"`
	WaterIntake     int `json:"water_intake"`
	WaterGoal       int `json:"water_goal"`
	WorkoutProgress int `json:"workout_progress" binding:"min=0,max=100"`
}
