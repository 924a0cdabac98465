package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"orientation-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		trackID, _ := c.Get("trackId")
		recommendationID, _ := c.Get("recommendationId")
		extractionID, _ := c.Get("extractionId")

		telemetry.Info("request.complete", map[string]any{
			"request_id":        reqID,
			"method":            c.Request.Method,
			"path":              c.Request.URL.Path,
			"status":            status,
			"duration_ms":       float64(latency.Microseconds()) / 1000.0,
			"track_id":          trackID,
			"recommendation_id": recommendationID,
			"extraction_id":     extractionID,
			"client_ip":         c.ClientIP(),
			"user_agent":        c.Request.UserAgent(),
		})
	}
}
