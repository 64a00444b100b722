package db_models

import "gorm.io/datatypes"

// ApiLog is non-critical telemetry. Writes are fire-and-forget; nothing
// reads it except operators.
type ApiLog struct {
	BaseModel
	Source     string `gorm:"index"` // "api" | "webhook"
	Method     string
	Path       string
	Status     int
	DurationMs int64
	TraceID    string
	Payload    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
