package feed_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"zfit/internal/api/controllers"
	"zfit/internal/repositories"
	"zfit/internal/services"
)

var Module = fx.Provide(
	provideFeedRepo, provideFeedService, provideFeedController)

func provideFeedRepo(db *gorm.DB) repositories.FeedRepository {
	return repositories.NewFeedRepository(db)
}

func provideFeedService(feedRepo repositories.FeedRepository) services.FeedServiceInterface {
	return services.NewFeedService(feedRepo)
}

func provideFeedController(feedService services.FeedServiceInterface) *controllers.FeedController {
	return controllers.NewFeedController(feedService)
}
