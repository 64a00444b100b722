package repositories

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"zfit/internal/models/db_models"
)

type AdminRepository interface {
	// KPI counts
	CountProfiles(ctx context.Context) (int64, error)
	CountActiveProfiles(ctx context.Context, sinceUnix int64) (int64, error)
	CountWorkouts(ctx context.Context) (int64, error)
	CountPosts(ctx context.Context) (int64, error)
	CountArticles(ctx context.Context) (int64, error)
	CountCoupons(ctx context.Context) (int64, error)
	CountRoutines(ctx context.Context) (int64, error)

	// Aggregates
	LeaderboardRows(ctx context.Context) ([]LeaderboardRow, error)
	ExerciseUsage(ctx context.Context, limit int) ([]ExerciseUsageRow, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// ---------- Row helpers ----------

type LeaderboardRow struct {
	ProfileID string         `gorm:"column:profile_id"`
	Name      string         `gorm:"column:name"`
	Avatar    string         `gorm:"column:avatar"`
	Exercises datatypes.JSON `gorm:"column:exercises"`
}

type ExerciseUsageRow struct {
	Name string `gorm:"column:name"`
	Uses int64  `gorm:"column:uses"`
}

// ---------- Counts ----------

func (r *adminRepository) CountProfiles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Profile{}).Count(&n).Error
	return n, err
}

// Active = profile row touched within the window (workout completion and
// stat updates bump updated_at through the profile save path).
func (r *adminRepository) CountActiveProfiles(ctx context.Context, sinceUnix int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("updated_at >= ?", sinceUnix).
		Count(&n).Error
	return n, err
}

func (r *adminRepository) CountWorkouts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Workout{}).Count(&n).Error
	return n, err
}

func (r *adminRepository) CountPosts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.SocialPost{}).Count(&n).Error
	return n, err
}

func (r *adminRepository) CountArticles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.BlogArticle{}).Count(&n).Error
	return n, err
}

func (r *adminRepository) CountCoupons(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Coupon{}).Count(&n).Error
	return n, err
}

func (r *adminRepository) CountRoutines(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Routine{}).Count(&n).Error
	return n, err
}

// ---------- Aggregates ----------

// LeaderboardRows returns one row per completed session with its author
// snapshot. Volume needs set-label parsing, so the reduction happens in
// the service, not in SQL.
func (r *adminRepository) LeaderboardRows(ctx context.Context) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.WithContext(ctx).
		Table("workouts w").
		Select("w.profile_id, p.name, p.avatar, w.exercises").
		Joins("JOIN profiles p ON p.id = w.profile_id").
		Where("w.deleted_at IS NULL").
		Where("w.completed_at IS NOT NULL").
		Find(&rows).Error
	return rows, err
}

// ExerciseUsage counts exercise-name occurrences across all completed
// sessions, expanded out of the jsonb column by the database.
func (r *adminRepository) ExerciseUsage(ctx context.Context, limit int) ([]ExerciseUsageRow, error) {
	var rows []ExerciseUsageRow
	err := r.db.WithContext(ctx).
		Table("workouts w").
		Select("e->>'name' AS name, COUNT(*) AS uses").
		Joins("CROSS JOIN LATERAL jsonb_array_elements(w.exercises) AS e").
		Where("w.deleted_at IS NULL").
		Where("w.completed_at IS NOT NULL").
		Group("e->>'name'").
		Order("uses DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
