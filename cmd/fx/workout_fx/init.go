package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"zfit/internal/api/controllers"
	"zfit/internal/repositories"
	"zfit/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo, provideWorkoutService, provideWorkoutController)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(workoutRepo repositories.WorkoutRepository, profileRepo repositories.ProfileRepository) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo, profileRepo)
}

func provideWorkoutController(workoutService services.WorkoutServiceInterface) *controllers.WorkoutController {
	return controllers.NewWorkoutController(workoutService)
}
