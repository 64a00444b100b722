package request_models

type SaveCouponRequest struct {
	ID        string  `json:"id"`
	Code      string  `json:"code" binding:"required"`
	Discount  float64 `json:"discount"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	ExpiresAt string  `json:"expires_at"`
}

type SaveArticleRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title" binding:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
}

type SaveCatalogExerciseRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscle_group"`
}

type SaveRoutineRequest struct {
	ID           string          `json:"id"`
	Title        string          `json:"title" binding:"required"`
	MuscleGroups []string        `json:"muscle_groups"`
	Exercises    []ExerciseInput `json:"exercises"`
	IsPublic     bool            `json:"is_public"`
}
