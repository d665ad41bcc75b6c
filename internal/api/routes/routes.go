package routes

import (
	"karriarsparet-gateway/internal/api/handlers"
	"karriarsparet-gateway/internal/api/middleware"
	"karriarsparet-gateway/internal/barometer"
	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/internal/codes"
	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/internal/session"
	"karriarsparet-gateway/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Dependencies carries the wired components the route tree needs
type Dependencies struct {
	Config   *config.Config
	Client   *catalog.Client
	Cached   *catalog.CachedCatalog
	Detailer *catalog.Detailer
	Regions  *codes.Resolver
	Forecast *barometer.Resolver
	Sessions *session.Store
	Redis    *utils.RedisClient
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.RateLimit(deps.Config))
	e.Use(middleware.TimeoutConfig(deps.Config.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(deps.Client, deps.Redis))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.GET("/educations", handlers.ListEducationsHandler(deps.Config, deps.Client, deps.Detailer))
		v1.GET("/educations/:id", handlers.EducationDetailHandler(deps.Client, deps.Detailer))
		v1.GET("/educations/:id/forecast", handlers.ForecastHandler(deps.Client, deps.Forecast))

		v1.GET("/regions", handlers.RegionsHandler(deps.Cached, deps.Regions))
		v1.GET("/providers", handlers.ProvidersHandler(deps.Cached))

		v1.GET("/sessions/:id/filters", handlers.GetFiltersHandler(deps.Sessions))
		v1.PUT("/sessions/:id/filters", handlers.SaveFiltersHandler(deps.Sessions))
	}
}
