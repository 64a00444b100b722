package services

import (
	"context"
	"errors"
	"testing"

	"zfit/internal/models/db_models"
	"zfit/internal/models/request_models"
	"zfit/pkg/utils"
)

func TestPlanTransition(t *testing.T) {
	cases := []struct {
		orderStatus string
		productName string
		wantPlan    db_models.PlanTier
		wantApply   bool
	}{
		{"paid", "ZFit ELITE Anual", db_models.PlanElite, true},
		{"approved", "Plano PRO Mensal", db_models.PlanPro, true},
		{"paid", "Produto Avulso", db_models.PlanFree, true},
		{"refunded", "ZFit ELITE Anual", db_models.PlanFree, true},
		{"canceled", "Plano PRO Mensal", db_models.PlanFree, true},
		{"chargeback", "qualquer", db_models.PlanFree, true},
		{"waiting_payment", "ZFit ELITE Anual", db_models.PlanFree, false},
		{"", "", db_models.PlanFree, false},
	}
	for _, c := range cases {
		plan, apply := PlanTransition(c.orderStatus, c.productName)
		if plan != c.wantPlan || apply != c.wantApply {
			t.Errorf("PlanTransition(%q, %q) = %v, %v; want %v, %v",
				c.orderStatus, c.productName, plan, apply, c.wantPlan, c.wantApply)
		}
	}
}

func TestHandleOrderEventUpgrades(t *testing.T) {
	var gotEmail string
	var gotPlan db_models.PlanTier
	repo := &fakeProfileRepo{
		updatePlanByEmailFn: func(ctx context.Context, email string, plan db_models.PlanTier) (int64, error) {
			gotEmail = email
			gotPlan = plan
			return 1, nil
		},
	}
	telemetry := &fakeTelemetry{}
	svc := NewPaymentService(repo, telemetry)

	raw := []byte(`{"order_status":"paid"}`)
	err := svc.HandleOrderEvent(context.Background(), request_models.KiwifyWebhook{
		OrderStatus: "paid",
		ProductName: "ZFit ELITE Anual",
		Customer:    request_models.KiwifyCustomer{Email: " Ana@Example.com "},
	}, raw)
	if err != nil {
		t.Fatalf("HandleOrderEvent: %v", err)
	}
	if gotEmail != "ana@example.com" || gotPlan != db_models.PlanElite {
		t.Errorf("applied %q -> %v", gotEmail, gotPlan)
	}
	if len(telemetry.webhooks) != 1 {
		t.Errorf("recorded %d webhook payloads, want 1", len(telemetry.webhooks))
	}
}

func TestHandleOrderEventAcksUnknownEmail(t *testing.T) {
	repo := &fakeProfileRepo{
		updatePlanByEmailFn: func(ctx context.Context, email string, plan db_models.PlanTier) (int64, error) {
			return 0, nil
		},
	}
	svc := NewPaymentService(repo, &fakeTelemetry{})

	err := svc.HandleOrderEvent(context.Background(), request_models.KiwifyWebhook{
		OrderStatus: "paid",
		ProductName: "Plano PRO",
		Customer:    request_models.KiwifyCustomer{Email: "ghost@example.com"},
	}, nil)
	if err != nil {
		t.Errorf("unknown customer should be acked, got %v", err)
	}
}

func TestHandleOrderEventIgnoresPendingStatus(t *testing.T) {
	called := false
	repo := &fakeProfileRepo{
		updatePlanByEmailFn: func(ctx context.Context, email string, plan db_models.PlanTier) (int64, error) {
			called = true
			return 1, nil
		},
	}
	svc := NewPaymentService(repo, &fakeTelemetry{})

	err := svc.HandleOrderEvent(context.Background(), request_models.KiwifyWebhook{
		OrderStatus: "waiting_payment",
		Customer:    request_models.KiwifyCustomer{Email: "ana@example.com"},
	}, nil)
	if err != nil {
		t.Errorf("pending status should be acked, got %v", err)
	}
	if called {
		t.Error("pending status must not touch the plan")
	}
}

func TestHandleOrderEventRejectsEmptyEmail(t *testing.T) {
	svc := NewPaymentService(&fakeProfileRepo{}, &fakeTelemetry{})

	err := svc.HandleOrderEvent(context.Background(), request_models.KiwifyWebhook{
		OrderStatus: "paid",
	}, nil)
	if !errors.Is(err, utils.ErrInvalidEmail) {
		t.Errorf("got %v, want ErrInvalidEmail", err)
	}
}

func TestHandleOrderEventSurfacesWriteFailure(t *testing.T) {
	repo := &fakeProfileRepo{
		updatePlanByEmailFn: func(ctx context.Context, email string, plan db_models.PlanTier) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}
	svc := NewPaymentService(repo, &fakeTelemetry{})

	err := svc.HandleOrderEvent(context.Background(), request_models.KiwifyWebhook{
		OrderStatus: "refunded",
		Customer:    request_models.KiwifyCustomer{Email: "ana@example.com"},
	}, nil)
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("got %v, want ErrDatabaseError", err)
	}
}
