package services

import (
	"context"
	"time"

	"zfit/internal/models/db_models"
	"zfit/internal/repositories"
)

// TelemetryService records API-call and webhook telemetry. Every write is
// best-effort: errors are swallowed, timeouts are short, and no caller
// ever waits on the result.
type TelemetryServiceInterface interface {
	RecordAPICall(method, path string, status int, durationMs int64, traceID string)
	RecordWebhook(payload []byte)
}

type TelemetryService struct {
	telemetryRepo repositories.TelemetryRepository
}

func NewTelemetryService(telemetryRepo repositories.TelemetryRepository) TelemetryServiceInterface {
	return &TelemetryService{
		telemetryRepo: telemetryRepo,
	}
}

func (t *TelemetryService) RecordAPICall(method, path string, status int, durationMs int64, traceID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_ = t.telemetryRepo.Insert(ctx, &db_models.ApiLog{
		Source:     "api",
		Method:     method,
		Path:       path,
		Status:     status,
		DurationMs: durationMs,
		TraceID:    traceID,
	})
}

func (t *TelemetryService) RecordWebhook(payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	entry := &db_models.ApiLog{
		Source: "webhook",
		Method: "POST",
		Path:   "/webhooks/kiwify",
	}
	if len(payload) > 0 {
		entry.Payload = payload
	}
	_ = t.telemetryRepo.Insert(ctx, entry)
}
