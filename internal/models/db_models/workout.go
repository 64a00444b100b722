package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Workout struct {
	BaseModel
	ProfileID    uuid.UUID      `gorm:"index"`
	Title        string
	MuscleGroups pq.StringArray `gorm:"type:text[]"`
	Exercises    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	CompletedAt  *int64         `gorm:"index"`
	IsPublic     bool           `gorm:"default:false"`

	Profile Profile `gorm:"foreignKey:ProfileID"`
}

// Exercise and ExerciseSet live inside the Exercises jsonb column. Set
// weight and reps stay display labels ("10kg", "x10"); aggregates parse
// out the numeric part when they need it.
type Exercise struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	MuscleGroup string        `json:"muscleGroup"`
	Sets        []ExerciseSet `json:"sets"`
}

type ExerciseSet struct {
	Weight    string `json:"weight"`
	Reps      string `json:"reps"`
	Completed bool   `json:"completed"`
}
