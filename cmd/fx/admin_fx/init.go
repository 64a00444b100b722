package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"zfit/internal/api/controllers"
	"zfit/internal/repositories"
	"zfit/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAdminService, provideAdminController)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(adminRepo repositories.AdminRepository) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo)
}

func provideAdminController(adminService services.AdminServiceInterface, contentService services.ContentServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService, contentService)
}
