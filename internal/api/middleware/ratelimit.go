package middleware

import (
	"net/http"
	"sync"
	"time"

	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/pkg/models"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit applies a per-client token bucket keyed on the caller's IP.
// Idle client buckets are evicted after an hour so the map cannot grow
// unbounded.
func RateLimit(cfg *config.Config) echo.MiddlewareFunc {
	type clientLimiter struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	limit := rate.Limit(cfg.RateLimit.RequestsPerSecond)
	burst := cfg.RateLimit.Burst

	go func() {
		for range time.Tick(10 * time.Minute) {
			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > time.Hour {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			mu.Lock()
			client, ok := clients[ip]
			if !ok {
				client = &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
				clients[ip] = client
			}
			client.lastSeen = time.Now()
			allowed := client.limiter.Allow()
			mu.Unlock()

			if !allowed {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:     "rate_limited",
					Message:   "Too many requests",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}
