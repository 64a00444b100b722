package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Routine is a public workout template published by operators. Users start
// a session from one; the session itself lands in workouts.
type Routine struct {
	BaseModel
	Title        string
	MuscleGroups pq.StringArray `gorm:"type:text[]"`
	Exercises    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	IsPublic     bool           `gorm:"default:true"`
}
