package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/internal/models/response_models"
)

const testDate = "2025-03-15"

func newStatsService(repo *fakeStatsRepo) *StatsService {
	return &StatsService{statsRepo: repo, today: func() string { return testDate }}
}

func TestDailyReturnsRecordedStats(t *testing.T) {
	profileID := uuid.New()
	repo := &fakeStatsRepo{
		findFn: func(ctx context.Context, id uuid.UUID, date string) (*db_models.DailyStat, error) {
			if date != testDate {
				t.Errorf("date = %q, want %q", date, testDate)
			}
			return &db_models.DailyStat{
				ProfileID:       id,
				Date:            date,
				CaloriesBurned:  450,
				WaterIntake:     1500,
				WaterGoal:       3000,
				WorkoutProgress: 66,
			}, nil
		},
	}
	svc := newStatsService(repo)

	got, err := svc.Daily(context.Background(), profileID.String())
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	want := response_models.DailyStatsResponse{CaloriesBurned: 450, WaterIntake: 1500, WaterGoal: 3000, WorkoutProgress: 66}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDailyDefaultsWhenMissing(t *testing.T) {
	svc := newStatsService(&fakeStatsRepo{})

	got, err := svc.Daily(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if got != response_models.DefaultDailyStats() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestDailyDefaultsOnError(t *testing.T) {
	repo := &fakeStatsRepo{
		findFn: func(ctx context.Context, id uuid.UUID, date string) (*db_models.DailyStat, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newStatsService(repo)

	got, err := svc.Daily(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if got.WaterGoal != 3000 || got.CaloriesBurned != 0 {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestUpdateFillsWaterGoal(t *testing.T) {
	var upserted *db_models.DailyStat
	repo := &fakeStatsRepo{
		upsertFn: func(ctx context.Context, stat *db_models.DailyStat) error {
			upserted = stat
			return nil
		},
	}
	svc := newStatsService(repo)

	err := svc.Update(context.Background(), uuid.New().String(), request_models.UpdateDailyStatsRequest{
		CaloriesBurned: 200,
		WaterIntake:    500,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upserted.Date != testDate {
		t.Errorf("date = %q", upserted.Date)
	}
	if upserted.WaterGoal != 3000 {
		t.Errorf("water goal = %d, want the 3000 default", upserted.WaterGoal)
	}
}
