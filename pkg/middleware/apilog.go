package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APILogSink receives one record per finished request. Implementations must
// swallow their own failures; telemetry is never allowed to fail a request.
type APILogSink interface {
	RecordAPICall(method, path string, status int, durationMs int64, traceID string)
}

func APILogMiddleware(sink APILogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		duration := time.Since(start).Milliseconds()
		traceID := c.GetString("trace_id")

		// Fire and forget; the request is already answered.
		go sink.RecordAPICall(method, path, status, duration, traceID)
	}
}
