package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"zfit/internal/models/db_models"
)

type CouponRepository interface {
	ListByStatus(ctx context.Context, status db_models.CouponStatus) ([]db_models.Coupon, error)
	ListAll(ctx context.Context) ([]db_models.Coupon, error)
	Upsert(ctx context.Context, coupon *db_models.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{
		db: db,
	}
}

func (r *couponRepository) ListByStatus(ctx context.Context, status db_models.CouponStatus) ([]db_models.Coupon, error) {
	var coupons []db_models.Coupon
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&coupons).Error
	return coupons, err
}

func (r *couponRepository) ListAll(ctx context.Context) ([]db_models.Coupon, error) {
	var coupons []db_models.Coupon
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&coupons).Error
	return coupons, err
}

// Code uniqueness is enforced by the unique index, not here.
func (r *couponRepository) Upsert(ctx context.Context, coupon *db_models.Coupon) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(coupon).Error
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.Coupon{}, "id = ?", id).Error
}
