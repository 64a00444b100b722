package request_models

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

type SignUpRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdateProfileRequest struct {
	Name          string        `json:"name"`
	Avatar        string        `json:"avatar"`
	Height        *float64      `json:"height"`
	Weight        *float64      `json:"weight"`
	WeightHistory []WeightEntry `json:"weight_history"`
}

type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}
