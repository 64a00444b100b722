package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"zfit/cmd/fx/account_fx"
	"zfit/cmd/fx/admin_fx"
	"zfit/cmd/fx/content_fx"
	"zfit/cmd/fx/db_fx"
	"zfit/cmd/fx/feed_fx"
	"zfit/cmd/fx/memcache_fx"
	"zfit/cmd/fx/payment_fx"
	"zfit/cmd/fx/stats_fx"
	"zfit/cmd/fx/telemetry_fx"
	"zfit/cmd/fx/workout_fx"
	"zfit/internal/api/controllers"
	"zfit/internal/infra"
	"zfit/internal/models/db_models"
	"zfit/internal/services"
	"zfit/pkg/middleware"
)

const requestTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		telemetry_fx.Module,
		account_fx.Module,
		workout_fx.Module,
		feed_fx.Module,
		stats_fx.Module,
		content_fx.Module,
		admin_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.Profile{},
		&db_models.Workout{},
		&db_models.DailyStat{},
		&db_models.SocialPost{},
		&db_models.PostLike{},
		&db_models.Coupon{},
		&db_models.BlogArticle{},
		&db_models.CatalogExercise{},
		&db_models.Routine{},
		&db_models.ApiLog{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	workoutController *controllers.WorkoutController,
	feedController *controllers.FeedController,
	statsController *controllers.StatsController,
	contentController *controllers.ContentController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController,
	telemetry services.TelemetryServiceInterface) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestTimeoutMiddleware(requestTimeout))
	r.Use(middleware.APILogMiddleware(telemetry))

	RegisterRoutes(r,
		accountController,
		workoutController,
		feedController,
		statsController,
		contentController,
		adminController,
		paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	workoutController *controllers.WorkoutController,
	feedController *controllers.FeedController,
	statsController *controllers.StatsController,
	contentController *controllers.ContentController,
	adminController *controllers.AdminController,
	paymentController *controllers.PaymentController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/logout", middleware.JWTAuthMiddleware(), accountController.Logout)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
	accounts.PUT("/me", middleware.JWTAuthMiddleware(), accountController.UpdateMe)

	workouts := r.Group("/workouts", middleware.JWTAuthMiddleware())
	workouts.GET("/history", workoutController.History)
	workouts.POST("", workoutController.Save)

	feed := r.Group("/feed", middleware.JWTAuthMiddleware())
	feed.GET("", feedController.Feed)
	feed.POST("", feedController.Publish)
	feed.POST("/:id/like", feedController.ToggleLike)

	stats := r.Group("/stats", middleware.JWTAuthMiddleware())
	stats.GET("/daily", statsController.Daily)
	stats.PUT("/daily", statsController.Update)

	r.GET("/blog/articles", contentController.Articles)
	r.GET("/coupons", contentController.ActiveCoupons)
	r.GET("/exercises", contentController.Catalog)
	r.GET("/routines", contentController.PublicRoutines)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.GET("/stats", adminController.Overview)
	admin.GET("/leaderboard", adminController.Leaderboard)
	admin.GET("/exercise-stats", adminController.ExerciseStats)
	admin.GET("/coupons", adminController.Coupons)
	admin.POST("/coupons", adminController.SaveCoupon)
	admin.DELETE("/coupons/:id", adminController.DeleteCoupon)
	admin.POST("/articles", adminController.SaveArticle)
	admin.DELETE("/articles/:id", adminController.DeleteArticle)
	admin.POST("/exercises", adminController.SaveCatalogExercise)
	admin.DELETE("/exercises/:id", adminController.DeleteCatalogExercise)
	admin.POST("/routines", adminController.SaveRoutine)
	admin.DELETE("/routines/:id", adminController.DeleteRoutine)

	r.POST("/webhooks/kiwify", paymentController.HandleWebhook)
}
