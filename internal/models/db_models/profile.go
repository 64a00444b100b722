package db_models

import (
	"gorm.io/datatypes"
)

type PlanTier string

const (
	PlanFree  PlanTier = "Free"
	PlanPro   PlanTier = "Pro"
	PlanElite PlanTier = "Elite"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Profile struct {
	BaseModel
	Name   string
	Email  string `gorm:"uniqueIndex"`
	Avatar string
	Level  int    `gorm:"default:1"`
	XP     int    `gorm:"column:xp;default:0"`
	Role   string `gorm:"default:user"`
	Plan   PlanTier

	// Optional body metrics. Height in cm, weight in kg; WeightHistory keeps
	// the 10 most recent samples, oldest first.
	Height        *float64
	Weight        *float64
	WeightHistory datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Workouts []Workout    `gorm:"foreignKey:ProfileID"`
	Posts    []SocialPost `gorm:"foreignKey:ProfileID"`
}

type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}
