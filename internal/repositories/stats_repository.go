package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"zfit/internal/models/db_models"
)

type StatsRepository interface {
	FindByProfileAndDate(ctx context.Context, profileID uuid.UUID, date string) (*db_models.DailyStat, error)
	Upsert(ctx context.Context, stat *db_models.DailyStat) error
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{
		db: db,
	}
}

func (r *statsRepository) FindByProfileAndDate(ctx context.Context, profileID uuid.UUID, date string) (*db_models.DailyStat, error) {
	var stat db_models.DailyStat
	err := r.db.WithContext(ctx).
		First(&stat, "profile_id = ? AND date = ?", profileID, date).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &stat, nil
}

// Upsert replaces the snapshot for the (profile, date) pair. The home
// screen calls this repeatedly through the day.
func (r *statsRepository) Upsert(ctx context.Context, stat *db_models.DailyStat) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "profile_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"calories_burned", "water_intake", "water_goal", "workout_progress", "updated_at",
			}),
		}).
		Create(stat).Error
}
