package db_models

import "github.com/google/uuid"

// DailyStat is the one-per-profile-per-day snapshot behind the home screen.
// Date is a "2006-01-02" key derived from the server clock in UTC.
type DailyStat struct {
	BaseModel
	ProfileID uuid.UUID `gorm:"uniqueIndex:idx_profile_date"`
	Date      string    `gorm:"size:10;uniqueIndex:idx_profile_date"`

	CaloriesBurned  int
	WaterIntake     int `gorm:"comment:ml"`
	WaterGoal       int `gorm:"default:3000"`
	WorkoutProgress int `gorm:"comment:0-100"`
}
