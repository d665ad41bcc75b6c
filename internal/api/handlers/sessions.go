package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/internal/session"
	"karriarsparet-gateway/pkg/models"
	"karriarsparet-gateway/pkg/utils"
)

var validate = validator.New()

// GetFiltersHandler returns the saved filter snapshot for a session. Unknown
// sessions get the default state, not an error, so a fresh client can always
// start from this endpoint.
func GetFiltersHandler(store *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Param("id")
		filters := store.LoadFilters(c.Request().Context(), sessionID)
		return c.JSON(http.StatusOK, models.FiltersResponse{
			SessionID: sessionID,
			Filters:   filters,
		})
	}
}

// SaveFiltersHandler stores the filter snapshot for a session
func SaveFiltersHandler(store *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()
		sessionID := c.Param("id")

		var req models.SaveFiltersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := store.SaveFilters(c.Request().Context(), sessionID, req.Filters); err != nil {
			logger.Error("Failed to save filter snapshot", map[string]interface{}{
				"request_id": requestID,
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "storage_error",
				Message:   "Failed to save filters",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.FiltersResponse{
			SessionID: sessionID,
			Filters:   req.Filters,
		})
	}
}
