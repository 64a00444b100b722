package repositories

import (
	"context"

	"gorm.io/gorm"
	"zfit/internal/models/db_models"
)

type TelemetryRepository interface {
	Insert(ctx context.Context, entry *db_models.ApiLog) error
}

type telemetryRepository struct {
	db *gorm.DB
}

func NewTelemetryRepository(db *gorm.DB) TelemetryRepository {
	return &telemetryRepository{
		db: db,
	}
}

func (r *telemetryRepository) Insert(ctx context.Context, entry *db_models.ApiLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
