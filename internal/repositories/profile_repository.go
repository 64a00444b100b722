package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"zfit/internal/models/db_models"
)

type ProfileRepository interface {
	Insert(ctx context.Context, profile *db_models.Profile) error
	Save(ctx context.Context, profile *db_models.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Profile, error)
	AwardXP(ctx context.Context, id uuid.UUID, amount int) error
	UpdatePlanByEmail(ctx context.Context, email string, plan db_models.PlanTier) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) Insert(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Save(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) AwardXP(ctx context.Context, id uuid.UUID, amount int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("id = ?", id).
		Update("xp", gorm.Expr("xp + ?", amount)).Error
}

// UpdatePlanByEmail returns the number of rows touched so the webhook can
// ack unknown customers without treating them as failures.
func (r *profileRepository) UpdatePlanByEmail(ctx context.Context, email string, plan db_models.PlanTier) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("email = ?", email).
		Update("plan", plan)
	return tx.RowsAffected, tx.Error
}
