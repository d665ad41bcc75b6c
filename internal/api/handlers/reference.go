package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"karriarsparet-gateway/internal/catalog"
	"karriarsparet-gateway/internal/codes"
	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/pkg/utils"
)

// RegionsHandler serves the cached region list. When both cache and upstream
// are down it falls back to the built-in län table, so the region dropdown
// never comes back empty.
func RegionsHandler(cached *catalog.CachedCatalog, regions *codes.Resolver) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		list, err := cached.Regions(c.Request().Context())
		if err != nil {
			if requestCanceled(c) {
				return nil
			}
			logging.GetGlobalLogger().Warn("Region list fetch failed, serving built-in table", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusOK, regions.Options())
		}
		return c.JSON(http.StatusOK, list)
	}
}

// ProvidersHandler serves the cached provider list
func ProvidersHandler(cached *catalog.CachedCatalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		providers, err := cached.Providers(c.Request().Context())
		if err != nil {
			if requestCanceled(c) {
				return nil
			}
			logging.GetGlobalLogger().Error("Provider list fetch failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return upstreamError(c, requestID, err)
		}
		return c.JSON(http.StatusOK, providers)
	}
}
