package db_models

// CatalogExercise is one entry of the admin-managed exercise catalog that
// the workout builder picks from.
type CatalogExercise struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	MuscleGroup string `gorm:"index"`
}
