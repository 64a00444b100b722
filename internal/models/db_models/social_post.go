package db_models

import "github.com/google/uuid"

type SocialPost struct {
	BaseModel
	ProfileID     uuid.UUID `gorm:"index"`
	WorkoutTitle  string
	Intensity     int
	Calories      string
	Duration      string
	CommentsCount int

	Profile Profile `gorm:"foreignKey:ProfileID"`
}

// PostLike is one like by one profile. The pair is unique, so toggling is
// a delete-or-insert against this table.
type PostLike struct {
	BaseModel
	PostID    uuid.UUID `gorm:"uniqueIndex:idx_post_profile"`
	ProfileID uuid.UUID `gorm:"uniqueIndex:idx_post_profile"`
}
