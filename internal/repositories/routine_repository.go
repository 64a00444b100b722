package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"zfit/internal/models/db_models"
)

type RoutineRepository interface {
	ListPublic(ctx context.Context) ([]db_models.Routine, error)
	Upsert(ctx context.Context, routine *db_models.Routine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type routineRepository struct {
	db *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &routineRepository{
		db: db,
	}
}

func (r *routineRepository) ListPublic(ctx context.Context) ([]db_models.Routine, error) {
	var routines []db_models.Routine
	err := r.db.WithContext(ctx).
		Where("is_public = TRUE").
		Order("created_at DESC").
		Find(&routines).Error
	return routines, err
}

func (r *routineRepository) Upsert(ctx context.Context, routine *db_models.Routine) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(routine).Error
}

func (r *routineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Routine{}, "id = ?", id).Error
}
