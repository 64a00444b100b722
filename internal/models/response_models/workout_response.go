package response_models

type WorkoutResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	MuscleGroups []string           `json:"muscle_groups"`
	Exercises    []ExerciseResponse `json:"exercises"`
	CompletedAt  int64              `json:"completed_at,omitempty"`
	IsPublic     bool               `json:"is_public"`
}

type ExerciseResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	MuscleGroup string        `json:"muscle_group"`
	Sets        []SetResponse `json:"sets"`
}

type SetResponse struct {
	Weight    string `json:"weight"`
	Reps      string `json:"reps"`
	Completed bool   `json:"completed"`
}

type RoutineResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	MuscleGroups []string           `json:"muscle_groups"`
	Exercises    []ExerciseResponse `json:"exercises"`
}
