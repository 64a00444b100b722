package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"zfit/internal/models/db_models"
)

type WorkoutRepository interface {
	Insert(ctx context.Context, workout *db_models.Workout) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]db_models.Workout, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

// Insert appends a completed session. Sessions are write-once; there is no
// update path.
func (r *workoutRepository) Insert(ctx context.Context, workout *db_models.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *workoutRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]db_models.Workout, error) {
	var workouts []db_models.Workout
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Where("completed_at IS NOT NULL").
		Order("completed_at DESC").
		Limit(limit).
		Find(&workouts).Error
	return workouts, err
}
