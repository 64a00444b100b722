package services

import (
	"context"
	"log"
	"strings"

	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/internal/repositories"
	"zfit/pkg/utils"
)

// PaymentService applies the provider's order events to subscription tiers.
// It is a pure state transition: order_status plus product name decide the
// new plan for the matching email.
type PaymentServiceInterface interface {
	HandleOrderEvent(ctx context.Context, event request_models.KiwifyWebhook, rawPayload []byte) error
}

type PaymentService struct {
	profileRepo repositories.ProfileRepository
	telemetry   TelemetryServiceInterface
}

func NewPaymentService(profileRepo repositories.ProfileRepository, telemetry TelemetryServiceInterface) PaymentServiceInterface {
	return &PaymentService{
		profileRepo: profileRepo,
		telemetry:   telemetry,
	}
}

func (p *PaymentService) HandleOrderEvent(ctx context.Context, event request_models.KiwifyWebhook, rawPayload []byte) error {
	p.telemetry.RecordWebhook(rawPayload)

	email := utils.NormalizeEmail(event.Customer.Email)
	if email == "" {
		return utils.ErrInvalidEmail
	}

	plan, apply := PlanTransition(event.OrderStatus, event.ProductName)
	if !apply {
		// Statuses like "waiting_payment" change nothing; ack them.
		log.Printf("webhook: order_status %q ignored for %s", event.OrderStatus, email)
		return nil
	}

	affected, err := p.profileRepo.UpdatePlanByEmail(ctx, email, plan)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		// Unknown customer. Ack anyway so the provider stops retrying.
		log.Printf("webhook: no profile for %s", email)
		return nil
	}

	log.Printf("webhook: %s -> %s", email, plan)
	return nil
}

// PlanTransition maps an order event to the tier it grants. Paid orders
// grant the plan named by the product; refunds, cancellations and
// chargebacks always drop the account to Free, whatever it had before.
func PlanTransition(orderStatus, productName string) (db_models.PlanTier, bool) {
	switch orderStatus {
	case "paid", "approved":
		return planFromProductName(productName), true
	case "refunded", "canceled", "chargeback":
		return db_models.PlanFree, true
	default:
		return db_models.PlanFree, false
	}
}

func planFromProductName(productName string) db_models.PlanTier {
	name := strings.ToUpper(productName)
	switch {
	case strings.Contains(name, "ELITE"):
		return db_models.PlanElite
	case strings.Contains(name, "PRO"):
		return db_models.PlanPro
	default:
		return db_models.PlanFree
	}
}
