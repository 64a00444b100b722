package response_models

type DailyStatsResponse struct {
	CaloriesBurned  int `json:"calories_burned"`
	WaterIntake     int `json:"water_intake"`
	WaterGoal       int `json:"water_goal"`
	WorkoutProgress int `json:"workout_progress"`
}

// DefaultDailyStats is the snapshot a profile gets before it touches the
// home screen on a given day.
func DefaultDailyStats() DailyStatsResponse {
	return DailyStatsResponse{
		CaloriesBurned:  0,
		WaterIntake:     0,
		WaterGoal:       3000,
		WorkoutProgress: 0,
	}
}
