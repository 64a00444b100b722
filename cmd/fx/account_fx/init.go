package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"zfit/internal/api/controllers"
	"zfit/internal/models/db_models"
	"zfit/internal/repositories"
	"zfit/internal/services"
	mem "zfit/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideAccountService(profileRepo repositories.ProfileRepository, cache *mem.Store[db_models.Profile]) services.AccountServiceInterface {
	return services.NewAccountService(profileRepo, cache)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
