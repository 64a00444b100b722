package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"zfit/internal/api/controllers"
	"zfit/internal/repositories"
	"zfit/internal/services"
)

var Module = fx.Provide(
	provideBlogRepo, provideCouponRepo, provideCatalogRepo, provideRoutineRepo,
	provideContentService, provideContentController)

func provideBlogRepo(db *gorm.DB) repositories.BlogRepository {
	return repositories.NewBlogRepository(db)
}

func provideCouponRepo(db *gorm.DB) repositories.CouponRepository {
	return repositories.NewCouponRepository(db)
}

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideRoutineRepo(db *gorm.DB) repositories.RoutineRepository {
	return repositories.NewRoutineRepository(db)
}

func provideContentService(
	blogRepo repositories.BlogRepository,
	couponRepo repositories.CouponRepository,
	catalogRepo repositories.CatalogRepository,
	routineRepo repositories.RoutineRepository,
) services.ContentServiceInterface {
	return services.NewContentService(blogRepo, couponRepo, catalogRepo, routineRepo)
}

func provideContentController(contentService services.ContentServiceInterface) *controllers.ContentController {
	return controllers.NewContentController(contentService)
}
