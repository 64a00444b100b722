package request_models

type SaveWorkoutRequest struct {
	Title        string          `json:"title" binding:"required"`
	MuscleGroups []string        `json:"muscle_groups"`
	Exercises    []ExerciseInput `json:"exercises"`
	CompletedAt  int64           `json:"completed_at"`
	IsPublic     bool            `json:"is_public"`
}

type ExerciseInput struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" binding:"required"`
	MuscleGroup string     `json:"muscle_group"`
	Sets        []SetInput `json:"sets"`
}

type SetInput struct {
	Weight    string `json:"weight"`
	Reps      string `json:"reps"`
	Completed bool   `json:"completed"`
}
