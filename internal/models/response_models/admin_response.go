package response_models

type AdminStatsResponse struct {
	TotalProfiles  int64 `json:"total_profiles"`
	ActiveProfiles int64 `json:"active_profiles"`
	TotalWorkouts  int64 `json:"total_workouts"`
	TotalPosts     int64 `json:"total_posts"`
	TotalArticles  int64 `json:"total_articles"`
	TotalCoupons   int64 `json:"total_coupons"`
	TotalRoutines  int64 `json:"total_routines"`
}

type LeaderboardEntry struct {
	Rank      int     `json:"rank"`
	ProfileID string  `json:"profile_id"`
	Name      string  `json:"name"`
	Avatar    string  `json:"avatar"`
	Volume    float64 `json:"volume"`
}

type ExerciseUsage struct {
	Name string `json:"name"`
	Uses int64  `json:"uses"`
}

type ArticleResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
}

type CouponResponse struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	Discount  float64 `json:"discount"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	ExpiresAt string  `json:"expires_at"`
}

type CatalogExerciseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}
