package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"zfit/internal/models/db_models"
	"zfit/internal/models/response_models"
	"zfit/internal/repositories"
	"zfit/pkg/utils"
)

const (
	leaderboardSize  = 10
	exerciseStatSize = 20
	activeWindow     = 30 * 24 * time.Hour
)

type AdminServiceInterface interface {
	Overview(ctx context.Context) (*response_models.AdminStatsResponse, error)
	Leaderboard(ctx context.Context) ([]response_models.LeaderboardEntry, error)
	ExerciseStats(ctx context.Context) ([]response_models.ExerciseUsage, error)
}

type AdminService struct {
	adminRepo repositories.AdminRepository
}

func NewAdminService(adminRepo repositories.AdminRepository) AdminServiceInterface {
	return &AdminService{
		adminRepo: adminRepo,
	}
}

// Overview gathers the KPI counts with partial success: a count that fails
// stays zero and the rest of the dashboard still populates.
func (a *AdminService) Overview(ctx context.Context) (*response_models.AdminStatsResponse, error) {
	stats := &response_models.AdminStatsResponse{}
	since := time.Now().Add(-activeWindow).Unix()

	counts := []struct {
		dest  *int64
		fetch func(context.Context) (int64, error)
	}{
		{&stats.TotalProfiles, a.adminRepo.CountProfiles},
		{&stats.ActiveProfiles, func(ctx context.Context) (int64, error) { return a.adminRepo.CountActiveProfiles(ctx, since) }},
		{&stats.TotalWorkouts, a.adminRepo.CountWorkouts},
		{&stats.TotalPosts, a.adminRepo.CountPosts},
		{&stats.TotalArticles, a.adminRepo.CountArticles},
		{&stats.TotalCoupons, a.adminRepo.CountCoupons},
		{&stats.TotalRoutines, a.adminRepo.CountRoutines},
	}

	for _, c := range counts {
		n, err := c.fetch(ctx)
		if err != nil {
			log.Printf("admin count unavailable: %v", err)
			continue
		}
		*c.dest = n
	}

	return stats, nil
}

// Leaderboard ranks profiles by total volume over their completed sessions.
// Volume of one session is the sum of weight x reps across all of its sets;
// a session with no sets contributes zero.
func (a *AdminService) Leaderboard(ctx context.Context) ([]response_models.LeaderboardEntry, error) {
	rows, err := a.adminRepo.LeaderboardRows(ctx)
	if err != nil {
		log.Printf("leaderboard unavailable: %v", err)
		return []response_models.LeaderboardEntry{}, nil
	}

	type aggregate struct {
		name   string
		avatar string
		volume float64
	}
	totals := make(map[string]*aggregate)
	order := make([]string, 0)

	for _, row := range rows {
		agg, ok := totals[row.ProfileID]
		if !ok {
			agg = &aggregate{name: row.Name, avatar: row.Avatar}
			totals[row.ProfileID] = agg
			order = append(order, row.ProfileID)
		}
		agg.volume += sessionVolume(row.Exercises)
	}

	entries := make([]response_models.LeaderboardEntry, 0, len(totals))
	for _, id := range order {
		agg := totals[id]
		entries = append(entries, response_models.LeaderboardEntry{
			ProfileID: id,
			Name:      agg.name,
			Avatar:    agg.avatar,
			Volume:    agg.volume,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Volume > entries[j].Volume
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (a *AdminService) ExerciseStats(ctx context.Context) ([]response_models.ExerciseUsage, error) {
	rows, err := a.adminRepo.ExerciseUsage(ctx, exerciseStatSize)
	if err != nil {
		log.Printf("exercise stats unavailable: %v", err)
		return []response_models.ExerciseUsage{}, nil
	}

	usages := make([]response_models.ExerciseUsage, 0, len(rows))
	for _, row := range rows {
		usages = append(usages, response_models.ExerciseUsage{
			Name: row.Name,
			Uses: row.Uses,
		})
	}
	return usages, nil
}

func sessionVolume(raw []byte) float64 {
	var exercises []db_models.Exercise
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &exercises)
	}

	var volume float64
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			volume += utils.ParseMeasure(set.Weight) * utils.ParseMeasure(set.Reps)
		}
	}
	return volume
}
