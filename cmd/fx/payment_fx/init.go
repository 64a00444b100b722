package payment_fx

import (
	"go.uber.org/fx"
	"zfit/internal/api/controllers"
	"zfit/internal/repositories"
	"zfit/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePaymentController)

func providePaymentService(profileRepo repositories.ProfileRepository, telemetry services.TelemetryServiceInterface) services.PaymentServiceInterface {
	return services.NewPaymentService(profileRepo, telemetry)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
