package services

import (
	"context"

	"github.com/google/uuid"
	"zfit/internal/models/db_models"
	"zfit/internal/repositories"
)

// Function-backed fakes let each test stub only the calls it cares about.
// A nil field means the call is unexpected and returns zero values.

type fakeProfileRepo struct {
	insertFn            func(ctx context.Context, profile *db_models.Profile) error
	saveFn              func(ctx context.Context, profile *db_models.Profile) error
	findByIDFn          func(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	findByEmailFn       func(ctx context.Context, email string) (*db_models.Profile, error)
	awardXPFn           func(ctx context.Context, id uuid.UUID, amount int) error
	updatePlanByEmailFn func(ctx context.Context, email string, plan db_models.PlanTier) (int64, error)
}

func (f *fakeProfileRepo) Insert(ctx context.Context, profile *db_models.Profile) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(ctx, profile)
}

func (f *fakeProfileRepo) Save(ctx context.Context, profile *db_models.Profile) error {
	if f.saveFn == nil {
		return nil
	}
	return f.saveFn(ctx, profile)
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*db_models.Profile, error) {
	if f.findByEmailFn == nil {
		return nil, nil
	}
	return f.findByEmailFn(ctx, email)
}

func (f *fakeProfileRepo) AwardXP(ctx context.Context, id uuid.UUID, amount int) error {
	if f.awardXPFn == nil {
		return nil
	}
	return f.awardXPFn(ctx, id, amount)
}

func (f *fakeProfileRepo) UpdatePlanByEmail(ctx context.Context, email string, plan db_models.PlanTier) (int64, error) {
	if f.updatePlanByEmailFn == nil {
		return 0, nil
	}
	return f.updatePlanByEmailFn(ctx, email, plan)
}

type fakeWorkoutRepo struct {
	insertFn        func(ctx context.Context, workout *db_models.Workout) error
	listByProfileFn func(ctx context.Context, profileID uuid.UUID, limit int) ([]db_models.Workout, error)
}

func (f *fakeWorkoutRepo) Insert(ctx context.Context, workout *db_models.Workout) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(ctx, workout)
}

func (f *fakeWorkoutRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]db_models.Workout, error) {
	if f.listByProfileFn == nil {
		return nil, nil
	}
	return f.listByProfileFn(ctx, profileID, limit)
}

type fakeFeedRepo struct {
	insertFn     func(ctx context.Context, post *db_models.SocialPost) error
	listRecentFn func(ctx context.Context, limit int) ([]db_models.SocialPost, error)
	likeCountsFn func(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error)
	likedByFn    func(ctx context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]bool, error)
	toggleLikeFn func(ctx context.Context, postID, profileID uuid.UUID) (bool, int, error)
}

func (f *fakeFeedRepo) Insert(ctx context.Context, post *db_models.SocialPost) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(ctx, post)
}

func (f *fakeFeedRepo) ListRecent(ctx context.Context, limit int) ([]db_models.SocialPost, error) {
	if f.listRecentFn == nil {
		return nil, nil
	}
	return f.listRecentFn(ctx, limit)
}

func (f *fakeFeedRepo) LikeCounts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if f.likeCountsFn == nil {
		return map[uuid.UUID]int{}, nil
	}
	return f.likeCountsFn(ctx, postIDs)
}

func (f *fakeFeedRepo) LikedBy(ctx context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]bool, error) {
	if f.likedByFn == nil {
		return map[uuid.UUID]bool{}, nil
	}
	return f.likedByFn(ctx, postIDs, viewerID)
}

func (f *fakeFeedRepo) ToggleLike(ctx context.Context, postID, profileID uuid.UUID) (bool, int, error) {
	if f.toggleLikeFn == nil {
		return false, 0, nil
	}
	return f.toggleLikeFn(ctx, postID, profileID)
}

type fakeStatsRepo struct {
	findFn   func(ctx context.Context, profileID uuid.UUID, date string) (*db_models.DailyStat, error)
	upsertFn func(ctx context.Context, stat *db_models.DailyStat) error
}

func (f *fakeStatsRepo) FindByProfileAndDate(ctx context.Context, profileID uuid.UUID, date string) (*db_models.DailyStat, error) {
	if f.findFn == nil {
		return nil, nil
	}
	return f.findFn(ctx, profileID, date)
}

func (f *fakeStatsRepo) Upsert(ctx context.Context, stat *db_models.DailyStat) error {
	if f.upsertFn == nil {
		return nil
	}
	return f.upsertFn(ctx, stat)
}

type fakeAdminRepo struct {
	countProfilesFn       func(ctx context.Context) (int64, error)
	countActiveProfilesFn func(ctx context.Context, sinceUnix int64) (int64, error)
	countWorkoutsFn       func(ctx context.Context) (int64, error)
	countPostsFn          func(ctx context.Context) (int64, error)
	countArticlesFn       func(ctx context.Context) (int64, error)
	countCouponsFn        func(ctx context.Context) (int64, error)
	countRoutinesFn       func(ctx context.Context) (int64, error)
	leaderboardRowsFn     func(ctx context.Context) ([]repositories.LeaderboardRow, error)
	exerciseUsageFn       func(ctx context.Context, limit int) ([]repositories.ExerciseUsageRow, error)
}

func (f *fakeAdminRepo) CountProfiles(ctx context.Context) (int64, error) {
	if f.countProfilesFn == nil {
		return 0, nil
	}
	return f.countProfilesFn(ctx)
}

func (f *fakeAdminRepo) CountActiveProfiles(ctx context.Context, sinceUnix int64) (int64, error) {
	if f.countActiveProfilesFn == nil {
		return 0, nil
	}
	return f.countActiveProfilesFn(ctx, sinceUnix)
}

func (f *fakeAdminRepo) CountWorkouts(ctx context.Context) (int64, error) {
	if f.countWorkoutsFn == nil {
		return 0, nil
	}
	return f.countWorkoutsFn(ctx)
}

func (f *fakeAdminRepo) CountPosts(ctx context.Context) (int64, error) {
	if f.countPostsFn == nil {
		return 0, nil
	}
	return f.countPostsFn(ctx)
}

func (f *fakeAdminRepo) CountArticles(ctx context.Context) (int64, error) {
	if f.countArticlesFn == nil {
		return 0, nil
	}
	return f.countArticlesFn(ctx)
}

func (f *fakeAdminRepo) CountCoupons(ctx context.Context) (int64, error) {
	if f.countCouponsFn == nil {
		return 0, nil
	}
	return f.countCouponsFn(ctx)
}

func (f *fakeAdminRepo) CountRoutines(ctx context.Context) (int64, error) {
	if f.countRoutinesFn == nil {
		return 0, nil
	}
	return f.countRoutinesFn(ctx)
}

func (f *fakeAdminRepo) LeaderboardRows(ctx context.Context) ([]repositories.LeaderboardRow, error) {
	if f.leaderboardRowsFn == nil {
		return nil, nil
	}
	return f.leaderboardRowsFn(ctx)
}

func (f *fakeAdminRepo) ExerciseUsage(ctx context.Context, limit int) ([]repositories.ExerciseUsageRow, error) {
	if f.exerciseUsageFn == nil {
		return nil, nil
	}
	return f.exerciseUsageFn(ctx, limit)
}

type fakeTelemetry struct {
	webhooks [][]byte
}

func (f *fakeTelemetry) RecordAPICall(method, path string, status int, durationMs int64, traceID string) {
}

func (f *fakeTelemetry) RecordWebhook(payload []byte) {
	f.webhooks = append(f.webhooks, payload)
}
