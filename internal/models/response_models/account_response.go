package response_models

type ProfileResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Avatar        string        `json:"avatar"`
	Level         int           `json:"level"`
	XP            int           `json:"xp"`
	Role          string        `json:"role"`
	Email         string        `json:"email"`
	Plan          string        `json:"plan"`
	Height        *float64      `json:"height,omitempty"`
	Weight        *float64      `json:"weight,omitempty"`
	WeightHistory []WeightEntry `json:"weight_history,omitempty"`
}

type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
