package request_models

type PublishPostRequest struct {
	WorkoutTitle string `json:"workout_title" binding:"required"`
	Intensity    int    `json:"intensity"`
	Calories     string `json:"calories"`
	Duration     string `json:"duration"`
}
