package telemetry_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"zfit/internal/repositories"
	"zfit/internal/services"
)

var Module = fx.Provide(
	provideTelemetryRepo, provideTelemetryService)

func provideTelemetryRepo(db *gorm.DB) repositories.TelemetryRepository {
	return repositories.NewTelemetryRepository(db)
}

func provideTelemetryService(telemetryRepo repositories.TelemetryRepository) services.TelemetryServiceInterface {
	return services.NewTelemetryService(telemetryRepo)
}
