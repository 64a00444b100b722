package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"zfit/internal/models/db_models"
)

type CatalogRepository interface {
	ListAll(ctx context.Context) ([]db_models.CatalogExercise, error)
	Upsert(ctx context.Context, exercise *db_models.CatalogExercise) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (r *catalogRepository) ListAll(ctx context.Context) ([]db_models.CatalogExercise, error) {
	var exercises []db_models.CatalogExercise
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&exercises).Error
	return exercises, err
}

func (r *catalogRepository) Upsert(ctx context.Context, exercise *db_models.CatalogExercise) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(exercise).Error
}

func (r *catalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.CatalogExercise{}, "id = ?", id).Error
}
