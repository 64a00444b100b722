package response_models

type FeedAuthor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Level  int    `json:"level"`
	Plan   string `json:"plan"`
}

type FeedPostResponse struct {
	ID            string     `json:"id"`
	User          FeedAuthor `json:"user"`
	WorkoutTitle  string     `json:"workout_title"`
	Intensity     int        `json:"intensity"`
	Calories      string     `json:"calories"`
	Duration      string     `json:"duration"`
	Timestamp     string     `json:"timestamp"`
	Likes         int        `json:"likes"`
	CommentsCount int        `json:"comments_count"`
	HasLiked      bool       `json:"has_liked"`
}

type LikeResponse struct {
	PostID   string `json:"post_id"`
	Likes    int    `json:"likes"`
	HasLiked bool   `json:"has_liked"`
}
