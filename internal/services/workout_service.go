package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/internal/models/response_models"
	"zfit/internal/repositories"
	"zfit/pkg/utils"
)

const (
	historyLimit   = 50
	workoutXPBonus = 150
)

type WorkoutServiceInterface interface {
	History(ctx context.Context, profileID string) ([]response_models.WorkoutResponse, error)
	Save(ctx context.Context, profileID string, request request_models.SaveWorkoutRequest) (*response_models.WorkoutResponse, error)
}

type WorkoutService struct {
	workoutRepo repositories.WorkoutRepository
	profileRepo repositories.ProfileRepository
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository, profileRepo repositories.ProfileRepository) WorkoutServiceInterface {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		profileRepo: profileRepo,
	}
}

// History degrades to an empty list when the database cannot answer.
func (w *WorkoutService) History(ctx context.Context, profileID string) ([]response_models.WorkoutResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return []response_models.WorkoutResponse{}, nil
	}

	workouts, err := w.workoutRepo.ListByProfile(ctx, id, historyLimit)
	if err != nil {
		log.Printf("workout history unavailable for %s: %v", profileID, err)
		return []response_models.WorkoutResponse{}, nil
	}

	responses := make([]response_models.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		responses = append(responses, toWorkoutResponse(&workouts[i]))
	}
	return responses, nil
}

// Save appends the completed session and credits the XP bonus. The session
// is never updated afterwards.
func (w *WorkoutService) Save(ctx context.Context, profileID string, request request_models.SaveWorkoutRequest) (*response_models.WorkoutResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	completedAt := request.CompletedAt
	if completedAt == 0 {
		completedAt = utils.NowUnixSeconds()
	}

	workout := &db_models.Workout{
		ProfileID:    id,
		Title:        request.Title,
		MuscleGroups: request.MuscleGroups,
		Exercises:    marshalExercises(request.Exercises),
		CompletedAt:  &completedAt,
		IsPublic:     request.IsPublic,
	}

	if err := w.workoutRepo.Insert(ctx, workout); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := w.profileRepo.AwardXP(ctx, id, workoutXPBonus); err != nil {
		// The session is saved; losing the bonus is not worth failing it.
		log.Printf("xp award failed for %s: %v", profileID, err)
	}

	resp := toWorkoutResponse(workout)
	return &resp, nil
}

func marshalExercises(inputs []request_models.ExerciseInput) []byte {
	exercises := make([]db_models.Exercise, 0, len(inputs))
	for _, in := range inputs {
		ex := db_models.Exercise{
			ID:          in.ID,
			Name:        in.Name,
			MuscleGroup: in.MuscleGroup,
		}
		if ex.ID == "" {
			ex.ID = uuid.New().String()
		}
		for _, s := range in.Sets {
			ex.Sets = append(ex.Sets, db_models.ExerciseSet{
				Weight:    s.Weight,
				Reps:      s.Reps,
				Completed: s.Completed,
			})
		}
		exercises = append(exercises, ex)
	}
	b, _ := json.Marshal(exercises)
	return b
}

func toWorkoutResponse(workout *db_models.Workout) response_models.WorkoutResponse {
	resp := response_models.WorkoutResponse{
		ID:           workout.ID.String(),
		Title:        workout.Title,
		MuscleGroups: workout.MuscleGroups,
		Exercises:    decodeExercises(workout.Exercises),
		IsPublic:     workout.IsPublic,
	}
	if workout.CompletedAt != nil {
		resp.CompletedAt = *workout.CompletedAt
	}
	return resp
}

func decodeExercises(raw []byte) []response_models.ExerciseResponse {
	var exercises []db_models.Exercise
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &exercises)
	}

	responses := make([]response_models.ExerciseResponse, 0, len(exercises))
	for _, ex := range exercises {
		er := response_models.ExerciseResponse{
			ID:          ex.ID,
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
		}
		for _, s := range ex.Sets {
			er.Sets = append(er.Sets, response_models.SetResponse{
				Weight:    s.Weight,
				Reps:      s.Reps,
				Completed: s.Completed,
			})
		}
		responses = append(responses, er)
	}
	return responses
}
