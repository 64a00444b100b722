package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/internal/models/response_models"
	"zfit/internal/repositories"
	"zfit/pkg/utils"
)

type StatsServiceInterface interface {
	Daily(ctx context.Context, profileID string) (response_models.DailyStatsResponse, error)
	Update(ctx context.Context, profileID string, request request_models.UpdateDailyStatsRequest) error
}

type StatsService struct {
	statsRepo repositories.StatsRepository
	today     func() string
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{
		statsRepo: statsRepo,
		today:     utils.TodayKey,
	}
}

// Daily returns the default snapshot when nothing was recorded today or
// the database cannot answer. Callers never see the difference.
func (s *StatsService) Daily(ctx context.Context, profileID string) (response_models.DailyStatsResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return response_models.DefaultDailyStats(), nil
	}

	stat, err := s.statsRepo.FindByProfileAndDate(ctx, id, s.today())
	if err != nil {
		log.Printf("daily stats unavailable for %s: %v", profileID, err)
		return response_models.DefaultDailyStats(), nil
	}
	if stat == nil {
		return response_models.DefaultDailyStats(), nil
	}

	return response_models.DailyStatsResponse{
		CaloriesBurned:  stat.CaloriesBurned,
		WaterIntake:     stat.WaterIntake,
		WaterGoal:       stat.WaterGoal,
		WorkoutProgress: stat.WorkoutProgress,
	}, nil
}

func (s *StatsService) Update(ctx context.Context, profileID string, request request_models.UpdateDailyStatsRequest) error {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return utils.ErrAccountNotFound
	}

	stat := &db_models.DailyStat{
		ProfileID:       id,
		Date:            s.today(),
		CaloriesBurned:  request.CaloriesBurned,
		WaterIntake:     request.WaterIntake,
		WaterGoal:       request.WaterGoal,
		WorkoutProgress: request.WorkoutProgress,
	}
	if stat.WaterGoal == 0 {
		stat.WaterGoal = 3000
	}

	if err := s.statsRepo.Upsert(ctx, stat); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
