package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/pkg/models"
	"karriarsparet-gateway/pkg/utils"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logging.GetGlobalLogger().Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the gateway can actually serve traffic:
// Redis reachable and the upstream catalog answering
func ReadinessHandler(client *catalog.Client, redis *utils.RedisClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		ctx := c.Request().Context()

		checks := map[string]string{"api": "ok"}
		status := "ready"
		code := http.StatusOK

		if err := redis.IsHealthy(ctx); err != nil {
			logger.Warn("Redis health check failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			checks["redis"] = "unavailable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			checks["redis"] = "ok"
		}

		if err := client.Healthy(ctx); err != nil {
			logger.Warn("Upstream health check failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			checks["catalog"] = "unavailable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			checks["catalog"] = "ok"
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	})
}
